package theory

import "strings"

// Interval spans a number of semitones and a number of letter steps. The
// two are independent: a minor third and an augmented second cover the same
// three semitones but step a different number of letters, and the letter
// steps are what decide how the result is spelled.
type Interval struct {
	Semitones   int
	LetterSteps int
}

var (
	PerfectUnison = Interval{Semitones: 0, LetterSteps: 0}
	MinorSecond   = Interval{Semitones: 1, LetterSteps: 1}
	MajorSecond   = Interval{Semitones: 2, LetterSteps: 1}
	MinorThird    = Interval{Semitones: 3, LetterSteps: 2}
	MajorThird    = Interval{Semitones: 4, LetterSteps: 2}
	PerfectFourth = Interval{Semitones: 5, LetterSteps: 3}
	PerfectFifth  = Interval{Semitones: 7, LetterSteps: 4}
	MinorSixth    = Interval{Semitones: 8, LetterSteps: 5}
	MajorSixth    = Interval{Semitones: 9, LetterSteps: 5}
	MinorSeventh  = Interval{Semitones: 10, LetterSteps: 6}
	MajorSeventh  = Interval{Semitones: 11, LetterSteps: 6}
	PerfectOctave = Interval{Semitones: 12, LetterSteps: 7}
)

// Intervals maps canonical interval names to their values. Treat as read
// only.
var Intervals = map[string]Interval{
	"perfect unison": PerfectUnison,
	"minor second":   MinorSecond,
	"major second":   MajorSecond,
	"minor third":    MinorThird,
	"major third":    MajorThird,
	"perfect fourth": PerfectFourth,
	"perfect fifth":  PerfectFifth,
	"minor sixth":    MinorSixth,
	"major sixth":    MajorSixth,
	"minor seventh":  MinorSeventh,
	"major seventh":  MajorSeventh,
	"perfect octave": PerfectOctave,
}

// IntervalByName resolves a named interval, ignoring case and surrounding
// whitespace.
func IntervalByName(name string) (Interval, bool) {
	interval, ok := Intervals[strings.ToLower(strings.TrimSpace(name))]
	return interval, ok
}
