package theory

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPitch(t *testing.T, s string) Pitch {
	t.Helper()
	p, err := ParsePitch(s)
	require.NoError(t, err)
	return p
}

func TestParsePitchRoundTrip(t *testing.T) {
	inputs := []string{"C4", "C#4", "D##4", "Bb3", "Cbb1", "A0", "Bb-1", "C-2", "G#10"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			p := mustPitch(t, input)
			assert.Equal(t, input, p.String())

			again := mustPitch(t, p.String())
			assert.Equal(t, p, again)
		})
	}
}

func TestParsePitchRejections(t *testing.T) {
	inputs := []string{"", "C", "H4", "C#b4", "C###4", "4", "C4x", "C--4", "Cb"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParsePitch(input)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr, "expected parse error for %q", input)
		})
	}
}

func TestAbsSemitones(t *testing.T) {
	tests := []struct {
		pitch    string
		expected int
	}{
		{pitch: "C0", expected: 0},
		{pitch: "C1", expected: 12},
		{pitch: "C2", expected: 24},
		{pitch: "Cb2", expected: 23},
		{pitch: "B#1", expected: 24},
		{pitch: "G#2", expected: 32},
		{pitch: "B#3", expected: 48},
		{pitch: "C-1", expected: -12},
		{pitch: "Cb0", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.pitch, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustPitch(t, tt.pitch).AbsSemitones())
		})
	}
}

func TestMIDI(t *testing.T) {
	assert.Equal(t, 60, mustPitch(t, "C4").MIDI())
	assert.Equal(t, 69, mustPitch(t, "A4").MIDI())
	assert.Equal(t, 0, mustPitch(t, "C-1").MIDI())
	assert.Equal(t, 127, mustPitch(t, "G9").MIDI())
}

func TestAddInterval(t *testing.T) {
	tests := []struct {
		pitch    string
		interval Interval
		expected string
	}{
		// Unisons keep the spelling.
		{pitch: "C4", interval: PerfectUnison, expected: "C4"},
		{pitch: "C#4", interval: PerfectUnison, expected: "C#4"},
		{pitch: "D4", interval: PerfectUnison, expected: "D4"},
		// Minor thirds.
		{pitch: "C4", interval: MinorThird, expected: "Eb4"},
		{pitch: "C#4", interval: MinorThird, expected: "E4"},
		{pitch: "D4", interval: MinorThird, expected: "F4"},
		{pitch: "Fb4", interval: MinorThird, expected: "Abb4"},
		{pitch: "Cb4", interval: MinorThird, expected: "Ebb4"},
		// Major thirds, including double sharp results.
		{pitch: "C4", interval: MajorThird, expected: "E4"},
		{pitch: "C#4", interval: MajorThird, expected: "E#4"},
		{pitch: "D4", interval: MajorThird, expected: "F#4"},
		{pitch: "D#4", interval: MajorThird, expected: "F##4"},
		{pitch: "E#4", interval: MajorThird, expected: "G##4"},
		{pitch: "A#4", interval: MajorThird, expected: "C##5"},
		{pitch: "B#4", interval: MajorThird, expected: "D##5"},
		{pitch: "B#3", interval: MajorThird, expected: "D##4"},
		// Fifths, also across the octave boundary.
		{pitch: "C4", interval: PerfectFifth, expected: "G4"},
		{pitch: "C#4", interval: PerfectFifth, expected: "G#4"},
		{pitch: "D4", interval: PerfectFifth, expected: "A4"},
		{pitch: "G4", interval: PerfectFifth, expected: "D5"},
		{pitch: "G#4", interval: PerfectFifth, expected: "D#5"},
		{pitch: "Ab4", interval: PerfectFifth, expected: "Eb5"},
		{pitch: "B#4", interval: PerfectFifth, expected: "F##5"},
		{pitch: "E#4", interval: PerfectFifth, expected: "B#4"},
		// Sevenths stay inside the octave when the letter does.
		{pitch: "C4", interval: MajorSeventh, expected: "B4"},
		{pitch: "C4", interval: MinorSeventh, expected: "Bb4"},
		// Octaves carry exactly once.
		{pitch: "C4", interval: PerfectOctave, expected: "C5"},
		{pitch: "C#4", interval: PerfectOctave, expected: "C#5"},
		{pitch: "D4", interval: PerfectOctave, expected: "D5"},
		{pitch: "Cbb4", interval: PerfectOctave, expected: "Cbb5"},
		// Negative octaves behave the same.
		{pitch: "A-2", interval: MinorThird, expected: "C-1"},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s+%dsemi", tt.pitch, tt.interval.Semitones)
		t.Run(name, func(t *testing.T) {
			result, err := mustPitch(t, tt.pitch).Add(tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestAddIntervalUnsupportedSpelling(t *testing.T) {
	// B##4 + major third targets D5 three semitones sharp of natural.
	_, err := mustPitch(t, "B##4").Add(MajorThird)
	var unsupported *UnsupportedSpellingError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, D, unsupported.Letter)
	assert.Equal(t, 5, unsupported.Octave)
	assert.Equal(t, 3, unsupported.Delta)

	// Dbb4 down a major third targets B3 three semitones flat of natural.
	_, err = mustPitch(t, "Dbb4").Sub(MajorThird)
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, B, unsupported.Letter)
	assert.Equal(t, 3, unsupported.Octave)
	assert.Equal(t, -3, unsupported.Delta)
}

func TestSubInterval(t *testing.T) {
	tests := []struct {
		pitch    string
		interval Interval
		expected string
	}{
		{pitch: "C4", interval: MinorSecond, expected: "B3"},
		{pitch: "G4", interval: PerfectFifth, expected: "C4"},
		{pitch: "C5", interval: PerfectOctave, expected: "C4"},
		{pitch: "Eb4", interval: MinorThird, expected: "C4"},
		{pitch: "D##4", interval: MajorThird, expected: "B#3"},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s-%dsemi", tt.pitch, tt.interval.Semitones)
		t.Run(name, func(t *testing.T) {
			result, err := mustPitch(t, tt.pitch).Sub(tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestAddThenSubRoundTrips(t *testing.T) {
	start := mustPitch(t, "F#3")
	for name, interval := range Intervals {
		up, err := start.Add(interval)
		require.NoError(t, err, "adding %s", name)
		back, err := up.Sub(interval)
		require.NoError(t, err, "subtracting %s", name)
		assert.Equal(t, start, back, "round trip through %s", name)
	}
}

func TestPitchSpellings(t *testing.T) {
	tests := []struct {
		name     string
		abs      int
		expected []string
	}{
		{name: "mid octave", abs: 28, expected: []string{"E2", "Fb2", "D##2"}},
		{name: "natural G", abs: 31, expected: []string{"G2", "F##2", "Abb2"}},
		{name: "two spellings only", abs: 32, expected: []string{"G#2", "Ab2"}},
		{name: "octave start borrows B# from below", abs: 12, expected: []string{"C1", "B#0", "Dbb1"}},
		{name: "offset one borrows B## from below", abs: 13, expected: []string{"C#1", "Db1", "B##0"}},
		{name: "octave end borrows Cb from above", abs: 11, expected: []string{"B0", "A##0", "Cb1"}},
		{name: "offset ten borrows Cbb from above", abs: 10, expected: []string{"Bb0", "A#0", "Cbb1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expected []Pitch
			for _, s := range tt.expected {
				expected = append(expected, mustPitch(t, s))
			}
			assert.ElementsMatch(t, expected, PitchSpellings(tt.abs))
		})
	}
}
