// Command tonal parses chords from pitch strings or yaml chord sheets,
// prints their canonical form, and optionally renders them to images via
// MuseScore or plays them on a MIDI out port.
//
//	tonal -notes "C4,Eb4,G#4" -render
//	tonal -transpose "major third" progression.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/tonal-go/tonal/internal/config"
	"github.com/tonal-go/tonal/internal/logger"
	"github.com/tonal-go/tonal/internal/midiout"
	"github.com/tonal-go/tonal/internal/render"
	"github.com/tonal-go/tonal/internal/score"
	"github.com/tonal-go/tonal/pkg/theory"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	notes := flag.String("notes", "", `Comma-separated pitches forming one chord, e.g. "C4,Eb4,G#4".`)
	name := flag.String("name", "chord", "Base name for output written for -notes.")
	transpose := flag.String("transpose", "", `Interval to transpose every chord by, e.g. "major third".`)
	doRender := flag.Bool("render", false, "Render each chord to a PNG via MuseScore.")
	doPlay := flag.Bool("play", false, "Play each chord on a MIDI out port.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Parse()

	if *versionFlag {
		fmt.Println(releaseVersion)
		os.Exit(0)
	}

	entries, err := collectChords(*notes, *name, flag.Args())
	if err != nil {
		log.Fatalf("Failed to read chords: %v", err)
	}
	if len(entries) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *transpose != "" {
		interval, ok := theory.IntervalByName(*transpose)
		if !ok {
			log.Fatalf("Unknown interval: %q", *transpose)
		}
		for i, entry := range entries {
			moved, err := entry.Chord.Transpose(interval)
			if err != nil {
				log.Fatalf("Cannot transpose %s by %s: %v", entry.Name, *transpose, err)
			}
			entries[i].Chord = moved
		}
	}

	var player *midiout.Player
	if *doPlay {
		player, err = midiout.Open(cfg.MIDIPort)
		if err != nil {
			log.Fatalf("Failed to open MIDI out: %v", err)
		}
		defer player.Close()
		logger.Info("MIDI out open", logger.Fields{"port": player.Port()})
	}

	renderer := render.Renderer{MscorePath: cfg.MscorePath, Timeout: cfg.RenderTimeout}
	hold := time.Duration(cfg.HoldSeconds) * time.Second
	ctx := context.Background()

	failures := 0
	for _, entry := range entries {
		fmt.Printf("%s: %s\n", entry.Name, entry.Chord)

		if *doRender {
			png, err := renderer.Render(ctx, entry.Chord, cfg.OutputDir, entry.Name)
			if err != nil {
				if errors.Is(err, render.ErrMuseScoreNotFound) {
					log.Fatalf("MuseScore is not installed or not found: %v", err)
				}
				logger.Error("Render failed", err, logger.Fields{"chord": entry.Name})
				failures++
				continue
			}
			logger.Info("Rendered chord", logger.Fields{"chord": entry.Name, "png": png})
		}

		if player != nil {
			if err := player.PlayChord(entry.Chord, hold); err != nil {
				logger.Error("Playback failed", err, logger.Fields{"chord": entry.Name})
				failures++
			}
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// collectChords merges the -notes chord with any yaml chord sheets given as
// positional arguments.
func collectChords(notes, name string, files []string) ([]score.Entry, error) {
	var entries []score.Entry

	if notes != "" {
		var pitches []theory.Pitch
		for _, ns := range strings.Split(notes, ",") {
			p, err := theory.ParsePitch(strings.TrimSpace(ns))
			if err != nil {
				return nil, err
			}
			pitches = append(pitches, p)
		}
		entries = append(entries, score.Entry{Name: name, Chord: theory.NewChord(pitches...)})
	}

	for _, path := range files {
		sheet, err := score.Load(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, sheet.Chords...)
	}
	return entries, nil
}
