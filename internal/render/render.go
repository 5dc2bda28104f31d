// Package render turns chords into engraved images by shelling out to
// MuseScore.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/tonal-go/tonal/internal/musicxml"
	"github.com/tonal-go/tonal/pkg/theory"
)

// ErrMuseScoreNotFound indicates the mscore binary is not installed or not
// on PATH.
var ErrMuseScoreNotFound = errors.New("mscore not found")

// Renderer writes MusicXML files and runs MuseScore on them.
type Renderer struct {
	MscorePath string
	Timeout    time.Duration
}

// Render writes the chord to <dir>/<name>.xml and asks MuseScore for
// <dir>/<name>.png, returning the image path.
func (r Renderer) Render(ctx context.Context, chord theory.Chord, dir, name string) (string, error) {
	xmlPath := filepath.Join(dir, name+".xml")
	pngPath := filepath.Join(dir, name+".png")

	if err := writeDocument(chord, xmlPath); err != nil {
		return "", err
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	// -T 50 trims the image to the content with a 50px margin.
	cmd := exec.CommandContext(ctx, r.MscorePath, xmlPath, "-o", pngPath, "-T", "50")
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w at %q", ErrMuseScoreNotFound, r.MscorePath)
		}
		return "", fmt.Errorf("mscore failed on %s: %w: %s", xmlPath, err, out)
	}
	return pngPath, nil
}

func writeDocument(chord theory.Chord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := musicxml.Document(chord).Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
