package theory

// Alteration is a chromatic modifier between double flat and double sharp.
// The integer value is the semitone delta it applies to a letter. Triple
// accidentals are not representable.
type Alteration int

const (
	DoubleFlat  Alteration = -2
	Flat        Alteration = -1
	Natural     Alteration = 0
	Sharp       Alteration = 1
	DoubleSharp Alteration = 2
)

// Semitones returns the semitone delta of the alteration.
func (a Alteration) Semitones() int { return int(a) }

func (a Alteration) String() string {
	switch a {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	default:
		return ""
	}
}

// parseAlteration reads a run of 0-2 identical accidental glyphs. Mixed
// glyphs or longer runs do not map to a representable alteration.
func parseAlteration(run string) (Alteration, error) {
	switch run {
	case "":
		return Natural, nil
	case "#":
		return Sharp, nil
	case "##":
		return DoubleSharp, nil
	case "b":
		return Flat, nil
	case "bb":
		return DoubleFlat, nil
	}
	return Natural, &ParseError{Input: run, Msg: "accidentals must be a run of at most two '#' or two 'b'"}
}

// alterationBySemitones looks up the alteration for a delta in [-2,2].
func alterationBySemitones(delta int) (Alteration, bool) {
	if delta < -2 || delta > 2 {
		return Natural, false
	}
	return Alteration(delta), true
}
