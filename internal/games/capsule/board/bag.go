package board

// Template is a two-color capsule waiting in the bag.
type Template struct {
	Left  Color
	Right Color
}

// NoTemplate marks a hint slot past the end of the current bag.
var NoTemplate = Template{}

// IsNone reports whether t is the NoTemplate placeholder.
func (t Template) IsNone() bool {
	return t == NoTemplate
}

// Spawn returns a horizontal piece at the top of g over the spawn columns.
func (t Template) Spawn(g *Grid) Piece {
	return NewPiece(t.Left, t.Right, g.H-1, g.SpawnColumn())
}

// Bag deals every two-color combination of the playable colors once per
// cycle, reshuffling when the cycle wraps.
type Bag struct {
	templates []Template
	cursor    int
}

// NewBag creates a bag holding every ordered pair of playable colors.
func NewBag() *Bag {
	b := &Bag{}
	for _, left := range PlayableColors {
		for _, right := range PlayableColors {
			b.templates = append(b.templates, Template{Left: left, Right: right})
		}
	}
	return b
}

// Size returns the number of templates per cycle.
func (b *Bag) Size() int {
	return len(b.templates)
}

// Reset shuffles the bag and moves the cursor to the first template.
func (b *Bag) Reset(rng Rand) {
	b.shuffle(rng)
	b.cursor = 0
}

// Current returns the template under the cursor.
func (b *Bag) Current() Template {
	return b.templates[b.cursor]
}

// Next advances the cursor, reshuffling on wraparound, and returns the
// template it lands on.
func (b *Bag) Next(rng Rand) Template {
	b.cursor = (b.cursor + 1) % len(b.templates)
	if b.cursor == 0 {
		b.shuffle(rng)
	}
	return b.templates[b.cursor]
}

// Hints returns the two templates after the cursor without consuming them.
// Slots beyond the end of the current cycle hold NoTemplate.
func (b *Bag) Hints() [2]Template {
	var hints [2]Template
	for i := range hints {
		if pos := b.cursor + 1 + i; pos < len(b.templates) {
			hints[i] = b.templates[pos]
		}
	}
	return hints
}

func (b *Bag) shuffle(rng Rand) {
	rng.Shuffle(len(b.templates), func(i, j int) {
		b.templates[i], b.templates[j] = b.templates[j], b.templates[i]
	})
}
