package theory

import (
	"fmt"
	"strconv"
)

// Pitch is a note in a specific octave. Octave 0 starts at the natural C
// whose absolute semitone offset is 0; octaves may be negative.
type Pitch struct {
	Note   Note
	Octave int
}

// ParsePitch reads a note followed by a signed integer octave: "C4",
// "D##4", "Bb-1".
func ParsePitch(s string) (Pitch, error) {
	i := 0
	for i < len(s) && s[i] != '-' && (s[i] < '0' || s[i] > '9') {
		i++
	}
	if i == len(s) {
		return Pitch{}, &ParseError{Input: s, Msg: "missing octave"}
	}
	note, err := ParseNote(s[:i])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Pitch{}, &ParseError{Input: s, Msg: fmt.Sprintf("bad octave %q", s[i:])}
	}
	return Pitch{Note: note, Octave: octave}, nil
}

func (p Pitch) String() string {
	return p.Note.String() + strconv.Itoa(p.Octave)
}

// AbsSemitones returns the semitone offset from C0. The spelling counts:
// B#3 is 48 even though its pitch class is 0.
func (p Pitch) AbsSemitones() int {
	return p.Note.Letter.NaturalOffset() + p.Note.Alteration.Semitones() + 12*p.Octave
}

// MIDI returns the MIDI key number of the pitch (C4 = 60, C-1 = 0). The
// result is not clamped; callers enforce 0..127 where it matters.
func (p Pitch) MIDI() int {
	return p.AbsSemitones() + 12
}

// Add transposes the pitch up by an interval, spelling the result from the
// interval's letter steps rather than the nearest enharmonic. The letter is
// stepped first, carrying the octave on each B..C wrap; whatever semitone
// residual remains between the target pitch and the stepped letter's
// natural pitch becomes the alteration. A residual outside -2..+2 returns
// an UnsupportedSpellingError, never a respelled substitute.
func (p Pitch) Add(interval Interval) (Pitch, error) {
	letter, wraps := p.Note.Letter.Add(interval.LetterSteps)
	octave := p.Octave + wraps
	target := p.AbsSemitones() + interval.Semitones
	natural := letter.NaturalOffset() + 12*octave
	alteration, ok := alterationBySemitones(target - natural)
	if !ok {
		return Pitch{}, &UnsupportedSpellingError{Letter: letter, Octave: octave, Delta: target - natural}
	}
	return Pitch{Note: Note{Letter: letter, Alteration: alteration}, Octave: octave}, nil
}

// Sub transposes down: both distances negate and the same reconciliation
// applies.
func (p Pitch) Sub(interval Interval) (Pitch, error) {
	return p.Add(Interval{Semitones: -interval.Semitones, LetterSteps: -interval.LetterSteps})
}

// PitchSpellings enumerates every representable pitch with the given
// absolute semitone offset. Spellings near an octave boundary live in the
// neighbouring octave: 48 is C4 but also B#3 and Dbb4.
func PitchSpellings(abs int) []Pitch {
	base := floorDiv(abs, 12)
	var pitches []Pitch
	for octave := base - 1; octave <= base+1; octave++ {
		for _, note := range SpellingsOf(abs) {
			p := Pitch{Note: note, Octave: octave}
			if p.AbsSemitones() == abs {
				pitches = append(pitches, p)
			}
		}
	}
	return pitches
}
