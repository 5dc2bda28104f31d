package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordDeduplicates(t *testing.T) {
	c4 := mustPitch(t, "C4")
	chord := NewChord(c4, c4, mustPitch(t, "E4"))
	assert.Equal(t, 2, chord.Len())
	assert.True(t, chord.Contains(c4))
}

func TestChordMembershipIsBySpelling(t *testing.T) {
	chord := NewChord(mustPitch(t, "C4"))
	assert.False(t, chord.Contains(mustPitch(t, "B#3")), "enharmonic equivalents are different members")
}

func TestChordStringIsSorted(t *testing.T) {
	chord := NewChord(mustPitch(t, "G4"), mustPitch(t, "C4"), mustPitch(t, "E4"))
	assert.Equal(t, "{C4,E4,G4}", chord.String())
}

func TestChordStringBreaksEnharmonicTies(t *testing.T) {
	chord := NewChord(mustPitch(t, "C4"), mustPitch(t, "B#3"))
	assert.Equal(t, "{B#3,C4}", chord.String())
}

func TestParseChordRoundTrip(t *testing.T) {
	chord, err := ParseChord("{C4,Eb4,G#4}")
	require.NoError(t, err)
	assert.Equal(t, 3, chord.Len())
	assert.Equal(t, "{C4,Eb4,G#4}", chord.String())

	empty, err := ParseChord("{}")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

func TestParseChordRejections(t *testing.T) {
	inputs := []string{"", "C4,E4", "{C4,E4", "C4,E4}", "{C4,H4}"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseChord(input)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestChordPitchesReturnsFreshSlice(t *testing.T) {
	chord := NewChord(mustPitch(t, "C4"), mustPitch(t, "E4"))
	first := chord.Pitches()
	first[0] = mustPitch(t, "A0")
	assert.Equal(t, "{C4,E4}", chord.String())
}

func TestChordTranspose(t *testing.T) {
	chord, err := ParseChord("{C4,E4,G4}")
	require.NoError(t, err)

	up, err := chord.Transpose(MajorSecond)
	require.NoError(t, err)
	assert.Equal(t, "{D4,F#4,A4}", up.String())

	// One member failing fails the whole chord.
	awkward := NewChord(mustPitch(t, "B##3"), mustPitch(t, "C4"))
	_, err = awkward.Transpose(MajorThird)
	var unsupported *UnsupportedSpellingError
	require.ErrorAs(t, err, &unsupported)
}
