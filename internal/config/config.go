package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the tool configuration
// Note: everything comes from the environment; there is no config file
// beyond the optional .env loaded at startup
type Config struct {
	// Rendering
	MscorePath    string // MuseScore binary used to render MusicXML to images
	OutputDir     string // directory where xml/png output lands
	RenderTimeout time.Duration

	// Playback
	MIDIPort    string // prefix of the MIDI out port name; empty picks the first port
	HoldSeconds int    // how long a chord is held when playing
}

func Load() *Config {
	return &Config{
		MscorePath:    getEnv("MSCORE_PATH", "mscore"),
		OutputDir:     getEnv("TONAL_OUTPUT_DIR", "."),
		RenderTimeout: time.Duration(getEnvInt("TONAL_RENDER_TIMEOUT_SECONDS", 30)) * time.Second,
		MIDIPort:      getEnv("TONAL_MIDI_PORT", ""),
		HoldSeconds:   getEnvInt("TONAL_HOLD_SECONDS", 2),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
