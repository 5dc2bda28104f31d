package theory

// Letter is one of the seven diatonic note names, ordered C..B so that
// ordinal arithmetic is mod 7.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

const letterCount = 7

var letterNames = [letterCount]string{"C", "D", "E", "F", "G", "A", "B"}

// naturalOffsets maps each letter to its semitone offset from C within one
// octave.
var naturalOffsets = [letterCount]int{0, 2, 4, 5, 7, 9, 11}

func (l Letter) String() string { return letterNames[l] }

// NaturalOffset returns the semitone offset from C of the unaltered letter.
func (l Letter) NaturalOffset() int { return naturalOffsets[l] }

// Add steps k letters forward (negative k steps backward) and returns the
// resulting letter together with the number of complete C..B cycles
// crossed. The wrap count carries the octave when adding intervals.
func (l Letter) Add(k int) (Letter, int) {
	n := int(l) + k
	wraps := floorDiv(n, letterCount)
	return Letter(n - wraps*letterCount), wraps
}

// Sub steps k letters backward.
func (l Letter) Sub(k int) (Letter, int) { return l.Add(-k) }

// ParseLetter converts a single byte A..G to its Letter.
func ParseLetter(c byte) (Letter, error) {
	for i, name := range letterNames {
		if name[0] == c {
			return Letter(i), nil
		}
	}
	return 0, &ParseError{Input: string(c), Msg: "unknown note letter"}
}

// floorDiv rounds toward negative infinity, unlike Go's truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
