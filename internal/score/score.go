// Package score loads yaml chord sheets: named chords given as lists of
// pitch strings, with an optional per-chord transposition.
package score

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tonal-go/tonal/pkg/theory"
)

// Entry is one chord of a sheet.
type Entry struct {
	Name  string
	Chord theory.Chord
}

// Score is a parsed chord sheet.
type Score struct {
	Title  string
	Chords []Entry
}

type scoreFile struct {
	Title  string      `yaml:"title"`
	Chords []chordFile `yaml:"chords"`
}

type chordFile struct {
	Name      string   `yaml:"name"`
	Notes     []string `yaml:"notes"`
	Transpose string   `yaml:"transpose,omitempty"`
}

// Load reads and parses a chord sheet from disk.
func Load(path string) (Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Score{}, fmt.Errorf("reading score: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return Score{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a Score from yaml. Note strings go through the strict pitch
// grammar; a bad note fails the whole sheet with the chord named in the
// error.
func Parse(data []byte) (Score, error) {
	var file scoreFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Score{}, fmt.Errorf("parsing score yaml: %w", err)
	}

	s := Score{Title: file.Title}
	for i, cf := range file.Chords {
		name := cf.Name
		if name == "" {
			name = fmt.Sprintf("chord%d", i+1)
		}

		pitches := make([]theory.Pitch, 0, len(cf.Notes))
		for _, ns := range cf.Notes {
			p, err := theory.ParsePitch(ns)
			if err != nil {
				return Score{}, fmt.Errorf("chord %q: %w", name, err)
			}
			pitches = append(pitches, p)
		}
		chord := theory.NewChord(pitches...)

		if cf.Transpose != "" {
			interval, ok := theory.IntervalByName(cf.Transpose)
			if !ok {
				return Score{}, fmt.Errorf("chord %q: unknown interval %q", name, cf.Transpose)
			}
			transposed, err := chord.Transpose(interval)
			if err != nil {
				return Score{}, fmt.Errorf("chord %q: %w", name, err)
			}
			chord = transposed
		}

		s.Chords = append(s.Chords, Entry{Name: name, Chord: chord})
	}
	return s, nil
}
