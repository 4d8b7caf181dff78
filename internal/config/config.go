// SPDX-License-Identifier: EPL-2.0

// Package config loads CLI defaults from ZENITH_* environment variables.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/ik5/zenith/mixer"
)

// Config holds the render settings of the zenith command.
type Config struct {
	SampleRate int // output rate in Hz; 0 follows track A
	BlockSize  int // mixer block in frames

	Volume float64

	CrossfadeStart    time.Duration
	CrossfadeDuration time.Duration

	Orbit     bool
	OrbitStep float64 // radians per block

	Dither bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		SampleRate: envInt("ZENITH_SAMPLE_RATE", 0),
		BlockSize:  envInt("ZENITH_BLOCK_SIZE", 128),

		Volume: envFloat("ZENITH_VOLUME", float64(mixer.DefaultVolume)),

		CrossfadeStart:    envDuration("ZENITH_CROSSFADE_START", 10*time.Second),
		CrossfadeDuration: envDuration("ZENITH_CROSSFADE_DURATION", 8*time.Second),

		Orbit:     envBool("ZENITH_ORBIT", false),
		OrbitStep: envFloat("ZENITH_ORBIT_STEP", mixer.DefaultOrbitStep),

		Dither: envBool("ZENITH_DITHER", true),
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("8s", "1m30s") or plain seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if s, err := strconv.ParseFloat(v, 64); err == nil {
		return time.Duration(s * float64(time.Second))
	}
	return fallback
}
