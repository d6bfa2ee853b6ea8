package grid

import "fmt"

// Direction is a unit compass move on the board.
type Direction uint8

const (
	// North moves one cell up (Y+1).
	North Direction = iota
	// East moves one cell right (X+1).
	East
	// South moves one cell down (Y-1).
	South
	// West moves one cell left (X-1).
	West
)

// directionCount is the number of valid Direction values.
const directionCount = 4

// Per-direction tables indexed by Direction. Lookups never branch on the value.
var (
	deltas  = [directionCount][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	letters = [directionCount]byte{'N', 'E', 'S', 'W'}
	names   = [directionCount]string{"North", "East", "South", "West"}
	arrows  = [directionCount]rune{'↑', '→', '↓', '←'}
)

// tokens maps the one-letter wire tokens to directions.
var tokens = map[string]Direction{
	"N": North,
	"E": East,
	"S": South,
	"W": West,
}

// ParseDirection resolves a one-letter token ("N", "E", "S", "W") into a
// Direction. Tokens are case-sensitive.
// Returns ErrUnknownDirection for anything else.
func ParseDirection(token string) (Direction, error) {
	d, ok := tokens[token]
	if !ok {
		return 0, fmt.Errorf("ParseDirection(%q): %w", token, ErrUnknownDirection)
	}

	return d, nil
}

// MustDirection is ParseDirection for compile-time constant tokens.
// It panics on an unknown token and must not be fed user input.
func MustDirection(token string) Direction {
	d, err := ParseDirection(token)
	if err != nil {
		panic(err)
	}

	return d
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d < directionCount
}

// Delta returns the unit offset (dx, dy) of d.
// An invalid direction yields (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}

	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % directionCount
}

// Letter returns the one-letter token of d, or '?' when d is invalid.
func (d Direction) Letter() byte {
	if !d.Valid() {
		return '?'
	}

	return letters[d]
}

// Arrow returns the arrow glyph drawn for d.
func (d Direction) Arrow() rune {
	if !d.Valid() {
		return '?'
	}

	return arrows[d]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return names[d]
}
