// Package board implements the capsule puzzle simulation: the cell model,
// the two-cell falling piece, the grid with gravity and run breaking,
// difficulty-driven board population and the piece bag.
//
// Rows are numbered from the bottom (row 0) to the top (row H-1).
package board

import "fmt"

// Kind identifies what occupies a grid cell.
type Kind uint8

const (
	KindEmpty  Kind = iota
	KindEnemy       // fixed target, never falls
	KindBlock       // obstacle, falls but never breaks
	KindPill        // half of an intact capsule
	KindSpill       // orphaned capsule half
	KindBroken      // cleared this pass, emptied on the next one
)

var kindNames = [...]string{"empty", "enemy", "block", "pill", "spill", "broken"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Orientation is a compass direction. On a cell it points at the paired
// half; on a Piece it gives the direction of the right half from the left.
type Orientation uint8

const (
	North Orientation = iota
	East
	South
	West
)

func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("orientation(%d)", o)
}

// Clockwise returns the orientation a quarter turn clockwise.
func (o Orientation) Clockwise() Orientation {
	return (o + 1) % 4
}

// CounterClockwise returns the orientation a quarter turn counter-clockwise.
func (o Orientation) CounterClockwise() Orientation {
	return (o + 3) % 4
}

// Opposite returns the compass-opposite orientation.
func (o Orientation) Opposite() Orientation {
	return (o + 2) % 4
}

// Offset returns the (row, col) step one cell in this direction.
func (o Orientation) Offset() (int, int) {
	switch o {
	case North:
		return 1, 0
	case South:
		return -1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// IsVertical reports whether the orientation is North or South.
func (o Orientation) IsVertical() bool {
	return o == North || o == South
}

// Color is an index into the fixed palette.
type Color uint8

const (
	ColorBlack Color = iota
	ColorRed
	ColorCyan
	ColorYellow
	ColorGreen
	ColorBlue
	ColorWhite
)

// palette holds RGBA values for every color index.
var palette = [...]uint32{
	0x000000FF,
	0xC40233FF,
	0x00CED1FF,
	0xFDFF00FF,
	0x7CFC00FF,
	0x0000FFFF,
	0xFFFAFAFF,
}

// PaletteSize is the number of valid color indices.
const PaletteSize = len(palette)

// PlayableColors are the colors used for generated enemies and capsules.
var PlayableColors = []Color{ColorRed, ColorCyan, ColorYellow}

// Value returns the RGBA palette entry for c.
func (c Color) Value() (uint32, error) {
	if int(c) >= len(palette) {
		return 0, &OutOfRangeError{What: "color", Row: int(c), Limit: len(palette)}
	}
	return palette[c], nil
}

var colorNames = [...]string{"black", "red", "cyan", "yellow", "green", "blue", "white"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", c)
}

// Cell is the value stored at one grid position.
type Cell struct {
	Kind        Kind
	Color       Color
	Orientation Orientation
}

// Empty is the zero cell.
var Empty = Cell{}

// NewPill returns a capsule half of color c pointing at its partner.
func NewPill(c Color, o Orientation) Cell {
	return Cell{Kind: KindPill, Color: c, Orientation: o}
}

// NewEnemy returns an enemy cell of color c.
func NewEnemy(c Color) Cell {
	return Cell{Kind: KindEnemy, Color: c}
}

// Equal compares kind and color. Orientation is ignored.
func (c Cell) Equal(other Cell) bool {
	return c.Kind == other.Kind && c.Color == other.Color
}

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsSolid reports whether the cell blocks movement and placement.
func (c Cell) IsSolid() bool {
	return c.Kind != KindEmpty && c.Kind != KindBroken
}

// IsBreakable reports whether the cell can be part of a cleared run.
// Blocks never break.
func (c Cell) IsBreakable() bool {
	switch c.Kind {
	case KindEnemy, KindPill, KindSpill:
		return true
	}
	return false
}

// HasGravity reports whether the cell falls when unsupported.
func (c Cell) HasGravity() bool {
	switch c.Kind {
	case KindPill, KindSpill, KindBlock:
		return true
	}
	return false
}

// IsEnemy reports whether the cell is an enemy.
func (c Cell) IsEnemy() bool {
	return c.Kind == KindEnemy
}

// IsCapsule reports whether the cell is a capsule half, paired or not.
func (c Cell) IsCapsule() bool {
	return c.Kind == KindPill || c.Kind == KindSpill
}

// ColorValue returns the palette entry of the cell's color.
func (c Cell) ColorValue() (uint32, error) {
	return c.Color.Value()
}
