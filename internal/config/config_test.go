// SPDX-License-Identifier: EPL-2.0

package config

import (
	"testing"
	"time"
)

var envVars = []string{
	"ZENITH_SAMPLE_RATE", "ZENITH_BLOCK_SIZE", "ZENITH_VOLUME",
	"ZENITH_CROSSFADE_START", "ZENITH_CROSSFADE_DURATION",
	"ZENITH_ORBIT", "ZENITH_ORBIT_STEP", "ZENITH_DITHER",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.SampleRate != 0 {
		t.Errorf("SampleRate = %d, want 0", cfg.SampleRate)
	}
	if cfg.BlockSize != 128 {
		t.Errorf("BlockSize = %d, want 128", cfg.BlockSize)
	}
	if cfg.Volume != 1 {
		t.Errorf("Volume = %v, want 1", cfg.Volume)
	}
	if cfg.CrossfadeStart != 10*time.Second {
		t.Errorf("CrossfadeStart = %v, want 10s", cfg.CrossfadeStart)
	}
	if cfg.CrossfadeDuration != 8*time.Second {
		t.Errorf("CrossfadeDuration = %v, want 8s", cfg.CrossfadeDuration)
	}
	if cfg.Orbit {
		t.Error("Orbit = true, want false")
	}
	if cfg.OrbitStep != 0.02 {
		t.Errorf("OrbitStep = %v, want 0.02", cfg.OrbitStep)
	}
	if !cfg.Dither {
		t.Error("Dither = false, want true")
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZENITH_SAMPLE_RATE", "44100")
	t.Setenv("ZENITH_BLOCK_SIZE", "512")
	t.Setenv("ZENITH_VOLUME", "0.8")
	t.Setenv("ZENITH_CROSSFADE_START", "1m30s")
	t.Setenv("ZENITH_CROSSFADE_DURATION", "12.5")
	t.Setenv("ZENITH_ORBIT", "true")
	t.Setenv("ZENITH_ORBIT_STEP", "0.05")
	t.Setenv("ZENITH_DITHER", "0")

	cfg := Load()

	if cfg.SampleRate != 44100 || cfg.BlockSize != 512 || cfg.Volume != 0.8 {
		t.Errorf("numeric settings = %d / %d / %v", cfg.SampleRate, cfg.BlockSize, cfg.Volume)
	}
	if cfg.CrossfadeStart != 90*time.Second {
		t.Errorf("CrossfadeStart = %v, want 1m30s", cfg.CrossfadeStart)
	}
	if cfg.CrossfadeDuration != 12500*time.Millisecond {
		t.Errorf("CrossfadeDuration = %v, want 12.5s", cfg.CrossfadeDuration)
	}
	if !cfg.Orbit || cfg.OrbitStep != 0.05 {
		t.Errorf("orbit = %v / %v, want true / 0.05", cfg.Orbit, cfg.OrbitStep)
	}
	if cfg.Dither {
		t.Error("Dither = true, want false")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZENITH_BLOCK_SIZE", "lots")
	t.Setenv("ZENITH_VOLUME", "loud")
	t.Setenv("ZENITH_CROSSFADE_DURATION", "soon")
	t.Setenv("ZENITH_DITHER", "maybe")

	cfg := Load()

	if cfg.BlockSize != 128 || cfg.Volume != 1 || cfg.CrossfadeDuration != 8*time.Second || !cfg.Dither {
		t.Errorf("invalid values did not fall back: %+v", cfg)
	}
}
