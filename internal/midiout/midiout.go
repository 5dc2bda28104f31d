// Package midiout plays chords on a MIDI output port through rtmidi.
package midiout

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/tonal-go/tonal/pkg/theory"
)

const velocity = 100

// Player holds an open MIDI out port.
type Player struct {
	driver *rtmididrv.Driver
	out    drivers.Out
	send   func(midi.Message) error
}

// Open starts the rtmidi driver and opens the first out port whose name has
// the given prefix, or the first port when the prefix is empty.
func Open(portPrefix string) (*Player, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("starting MIDI driver: %w", err)
	}
	outs, err := driver.Outs()
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("listing MIDI out ports: %w", err)
	}

	var port drivers.Out
	for _, o := range outs {
		if portPrefix == "" || strings.HasPrefix(o.String(), portPrefix) {
			port = o
			break
		}
	}
	if port == nil {
		driver.Close()
		return nil, fmt.Errorf("no MIDI out port matching %q", portPrefix)
	}
	if err := port.Open(); err != nil {
		driver.Close()
		return nil, fmt.Errorf("opening MIDI out %q: %w", port.String(), err)
	}
	send, err := midi.SendTo(port)
	if err != nil {
		port.Close()
		driver.Close()
		return nil, fmt.Errorf("opening MIDI out %q: %w", port.String(), err)
	}
	return &Player{driver: driver, out: port, send: send}, nil
}

// Port returns the name of the open port.
func (p *Player) Port() string { return p.out.String() }

func (p *Player) Close() {
	if p.out != nil {
		p.out.Close()
	}
	if p.driver != nil {
		p.driver.Close()
	}
}

// PlayChord sounds every pitch of the chord at once on channel 0 and holds
// it for the duration. A pitch outside the 0..127 key range is an error,
// not a clamp.
func (p *Player) PlayChord(chord theory.Chord, hold time.Duration) error {
	keys := make([]uint8, 0, chord.Len())
	for _, pitch := range chord.Pitches() {
		key := pitch.MIDI()
		if key < 0 || key > 127 {
			return fmt.Errorf("%s (key %d) is outside the MIDI range", pitch, key)
		}
		keys = append(keys, uint8(key))
	}

	for _, key := range keys {
		if err := p.send(midi.NoteOn(0, key, velocity)); err != nil {
			return fmt.Errorf("note on: %w", err)
		}
	}
	time.Sleep(hold)
	for _, key := range keys {
		if err := p.send(midi.NoteOff(0, key)); err != nil {
			return fmt.Errorf("note off: %w", err)
		}
	}
	return nil
}
