package movement

// Heading is one of the four orthogonal directions, in clockwise order.
type Heading uint8

const (
	Up Heading = iota
	Right
	Down
	Left
)

// Headings lists every heading in clockwise order starting from Up.
var Headings = [...]Heading{Up, Right, Down, Left}

var deltas = [...][2]int{
	Up:    {-1, 0},
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
}

// RotateLeft returns the heading after a 90° counter-clockwise turn.
func (h Heading) RotateLeft() Heading { return (h + 3) % 4 }

// RotateRight returns the heading after a 90° clockwise turn.
func (h Heading) RotateRight() Heading { return (h + 1) % 4 }

// Delta returns the (row, col) offset of one step in h.
// h must be Valid.
func (h Heading) Delta() (dr, dc int) {
	d := deltas[h]

	return d[0], d[1]
}

// Valid reports whether h is one of the four declared headings.
func (h Heading) Valid() bool { return h <= Left }

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}

	return "invalid"
}

// Arrow returns a single-rune glyph for h, handy in logs.
func (h Heading) Arrow() string {
	switch h {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}

	return "?"
}
