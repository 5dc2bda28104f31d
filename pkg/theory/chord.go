package theory

import (
	"sort"
	"strings"
)

// Chord is an unordered set of pitches. Membership is by full spelling
// identity, so a chord holding C4 does not hold B#3; duplicates collapse.
type Chord struct {
	pitches map[Pitch]struct{}
}

func NewChord(pitches ...Pitch) Chord {
	set := make(map[Pitch]struct{}, len(pitches))
	for _, p := range pitches {
		set[p] = struct{}{}
	}
	return Chord{pitches: set}
}

// ParseChord reads the braced form produced by String: "{C4,E4,G4}".
func ParseChord(s string) (Chord, error) {
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return Chord{}, &ParseError{Input: s, Msg: "chord must be wrapped in braces"}
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return NewChord(), nil
	}
	var pitches []Pitch
	for _, part := range strings.Split(inner, ",") {
		p, err := ParsePitch(strings.TrimSpace(part))
		if err != nil {
			return Chord{}, err
		}
		pitches = append(pitches, p)
	}
	return NewChord(pitches...), nil
}

func (c Chord) Len() int { return len(c.pitches) }

func (c Chord) Contains(p Pitch) bool {
	_, ok := c.pitches[p]
	return ok
}

// Pitches returns the members as a fresh slice in ascending pitch order,
// enharmonic ties broken by string form so that output is reproducible.
func (c Chord) Pitches() []Pitch {
	out := make([]Pitch, 0, len(c.pitches))
	for p := range c.pitches {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].AbsSemitones(), out[j].AbsSemitones()
		if a != b {
			return a < b
		}
		return out[i].String() < out[j].String()
	})
	return out
}

// Transpose shifts every member by the interval. A single unsupported
// spelling fails the whole chord.
func (c Chord) Transpose(interval Interval) (Chord, error) {
	moved := make([]Pitch, 0, len(c.pitches))
	for p := range c.pitches {
		q, err := p.Add(interval)
		if err != nil {
			return Chord{}, err
		}
		moved = append(moved, q)
	}
	return NewChord(moved...), nil
}

func (c Chord) String() string {
	parts := make([]string, 0, c.Len())
	for _, p := range c.Pitches() {
		parts = append(parts, p.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
