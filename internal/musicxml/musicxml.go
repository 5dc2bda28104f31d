// Package musicxml renders chords as single-measure MusicXML 3.1 partwise
// documents, suitable as input to notation software.
package musicxml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tonal-go/tonal/pkg/theory"
)

const doctype = `<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 3.1 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">` + "\n"

type scorePartwise struct {
	XMLName  xml.Name `xml:"score-partwise"`
	Version  string   `xml:"version,attr"`
	PartList partList `xml:"part-list"`
	Part     part     `xml:"part"`
}

type partList struct {
	ScorePart scorePart `xml:"score-part"`
}

type scorePart struct {
	ID       string `xml:"id,attr"`
	PartName string `xml:"part-name"`
}

type part struct {
	ID      string  `xml:"id,attr"`
	Measure measure `xml:"measure"`
}

type measure struct {
	Number     string     `xml:"number,attr"`
	Attributes attributes `xml:"attributes"`
	Notes      []note     `xml:"note"`
}

type attributes struct {
	Divisions int  `xml:"divisions"`
	Key       key  `xml:"key"`
	Clef      clef `xml:"clef"`
}

type key struct {
	Fifths int `xml:"fifths"`
}

type clef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

type note struct {
	Chord    *struct{} `xml:"chord,omitempty"`
	Pitch    pitch     `xml:"pitch"`
	Duration int       `xml:"duration"`
	Type     string    `xml:"type"`
}

type pitch struct {
	Step   string `xml:"step"`
	Alter  int    `xml:"alter"`
	Octave int    `xml:"octave"`
}

// Doc is a renderable MusicXML document.
type Doc struct {
	score scorePartwise
}

// Document stacks the chord's pitches as whole notes in one measure, in the
// chord's deterministic order. The alter element carries the full
// alteration delta, double accidentals included.
func Document(chord theory.Chord) Doc {
	pitches := chord.Pitches()
	notes := make([]note, 0, len(pitches))
	for i, p := range pitches {
		n := note{
			Pitch: pitch{
				Step:   p.Note.Letter.String(),
				Alter:  p.Note.Alteration.Semitones(),
				Octave: p.Octave,
			},
			Duration: 4,
			Type:     "whole",
		}
		// Every note after the first sounds together with it.
		if i > 0 {
			n.Chord = &struct{}{}
		}
		notes = append(notes, n)
	}
	return Doc{score: scorePartwise{
		Version:  "3.1",
		PartList: partList{ScorePart: scorePart{ID: "P1", PartName: "Music"}},
		Part: part{
			ID: "P1",
			Measure: measure{
				Number: "1",
				Attributes: attributes{
					Divisions: 1,
					Key:       key{Fifths: 0},
					Clef:      clef{Sign: "G", Line: 2},
				},
				Notes: notes,
			},
		},
	}}
}

// Encode writes the document with the XML declaration and MusicXML doctype.
func (d Doc) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, doctype); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d.score); err != nil {
		return fmt.Errorf("encoding MusicXML: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
