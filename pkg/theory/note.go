// Package theory models western diatonic pitch: letters, accidentals,
// octave-qualified pitches and exact interval arithmetic between them.
//
// "Semitone offset" is the pitch class within an octave (0..11, C = 0);
// "absolute semitone offset" counts semitones from C0. Every type is an
// immutable value; arithmetic returns new values and never mutates.
package theory

import "fmt"

// Note is a letter plus an alteration, with no octave. Enharmonic spellings
// (G# vs Ab) are distinct notes and never collapse.
type Note struct {
	Letter     Letter
	Alteration Alteration
}

// ParseNote reads one letter followed by up to two identical accidental
// glyphs: "C", "F#", "Bbb".
func ParseNote(s string) (Note, error) {
	if s == "" {
		return Note{}, &ParseError{Input: s, Msg: "empty note"}
	}
	letter, err := ParseLetter(s[0])
	if err != nil {
		return Note{}, &ParseError{Input: s, Msg: fmt.Sprintf("unknown note letter %q", s[0])}
	}
	alteration, err := parseAlteration(s[1:])
	if err != nil {
		return Note{}, &ParseError{Input: s, Msg: fmt.Sprintf("bad accidentals %q", s[1:])}
	}
	return Note{Letter: letter, Alteration: alteration}, nil
}

func (n Note) String() string { return n.Letter.String() + n.Alteration.String() }

// SemitoneOffset returns the pitch class of the note, 0..11 with C = 0.
// B# wraps to 0 and Cb to 11; Pitch accounts for the octave carry.
func (n Note) SemitoneOffset() int {
	offset := (n.Letter.NaturalOffset() + n.Alteration.Semitones()) % 12
	if offset < 0 {
		offset += 12
	}
	return offset
}

// SpellingsOf enumerates every representable note whose pitch class equals
// pc mod 12: SpellingsOf(0) holds C, B# and Dbb. A diagnostics helper;
// interval addition computes its target letter directly and never searches
// this set.
func SpellingsOf(pc int) []Note {
	pc = ((pc % 12) + 12) % 12
	var notes []Note
	for letter := C; letter <= B; letter++ {
		for alteration := DoubleFlat; alteration <= DoubleSharp; alteration++ {
			n := Note{Letter: letter, Alteration: alteration}
			if n.SemitoneOffset() == pc {
				notes = append(notes, n)
			}
		}
	}
	return notes
}
