package theory

import "fmt"

// ParseError reports input that does not match the note grammar.
type ParseError struct {
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %s", e.Input, e.Msg)
}

// UnsupportedSpellingError reports an interval result that lands on a
// letter whose required alteration is beyond double sharp or double flat.
// The result is not an approximation candidate: the operation produces no
// value at all.
type UnsupportedSpellingError struct {
	Letter Letter
	Octave int
	Delta  int
}

func (e *UnsupportedSpellingError) Error() string {
	return fmt.Sprintf("spelling %s%d would need a %+d semitone alteration; only -2..+2 are representable",
		e.Letter, e.Octave, e.Delta)
}
