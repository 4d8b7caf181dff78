// SPDX-License-Identifier: EPL-2.0

// Command zenith crossfades two audio files into a stereo 16-bit WAV.
//
//	zenith [flags] <a.{wav,mp3,ogg,aiff}> <b.{...}> <out.wav>
//
// Defaults come from ZENITH_* environment variables; flags override them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/ik5/zenith"
	"github.com/ik5/zenith/audio"
	"github.com/ik5/zenith/formats"
	"github.com/ik5/zenith/formats/wav"
	"github.com/ik5/zenith/internal/config"
	"github.com/ik5/zenith/meter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	flag.IntVar(&cfg.SampleRate, "rate", cfg.SampleRate, "output sample rate in Hz (0 follows the first track)")
	flag.IntVar(&cfg.BlockSize, "block", cfg.BlockSize, "mixer block size in frames")
	flag.Float64Var(&cfg.Volume, "volume", cfg.Volume, "master volume")
	flag.DurationVar(&cfg.CrossfadeStart, "start", cfg.CrossfadeStart, "when the crossfade begins")
	flag.DurationVar(&cfg.CrossfadeDuration, "fade", cfg.CrossfadeDuration, "crossfade length")
	flag.BoolVar(&cfg.Orbit, "orbit", cfg.Orbit, "enable the auto-pan orbit")
	flag.Float64Var(&cfg.OrbitStep, "orbit-step", cfg.OrbitStep, "orbit phase step per block in radians")
	flag.BoolVar(&cfg.Dither, "dither", cfg.Dither, "TPDF dither with noise shaping on output")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <a> <b> <out.wav>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, flag.Arg(0), flag.Arg(1), flag.Arg(2)); err != nil {
		log.Fatal().Err(err).Msg("zenith failed")
	}
}

func run(ctx context.Context, cfg config.Config, pathA, pathB, outPath string) error {
	reg := formats.Registry()

	a, err := openTrack(reg, pathA)
	if err != nil {
		return err
	}
	defer a.Close()

	b, err := openTrack(reg, pathB)
	if err != nil {
		return err
	}
	defer b.Close()

	rate := cfg.SampleRate
	if rate <= 0 {
		rate = a.SampleRate()
	}

	levels := meter.New(float64(rate))
	opts := []zenith.RenderOption{
		zenith.WithProcessorOptions(core.WithSampleRate(float64(rate)), core.WithBlockSize(cfg.BlockSize)),
		zenith.WithVolume(float32(cfg.Volume)),
		zenith.WithTap(levels.Write),
	}
	if cfg.Orbit {
		opts = append(opts, zenith.WithOrbit(cfg.OrbitStep))
	}
	if cfg.Dither {
		opts = append(opts, zenith.WithDither(0))
	}

	tr := zenith.Transition{Start: cfg.CrossfadeStart, Duration: cfg.CrossfadeDuration}
	log.Debug().Msgf("track A %s: %d Hz, %d ch", pathA, a.SampleRate(), a.Channels())
	log.Debug().Msgf("track B %s: %d Hz, %d ch", pathB, b.SampleRate(), b.Channels())
	log.Info().
		Int("rate", rate).
		Dur("start", tr.Start).
		Dur("fade", tr.Duration).
		Bool("orbit", cfg.Orbit).
		Bool("dither", cfg.Dither).
		Msg("Mixing")

	began := time.Now()
	pcm, outRate, err := zenith.RenderCrossfade(ctx, a, b, tr, zenith.ApplyRenderOptions(opts...))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := wav.WriteWAV16(out, outRate, 2, pcm); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	lv := levels.Levels()
	log.Info().
		Str("path", outPath).
		Int("frames", len(pcm)/2).
		Int("rate", outRate).
		Dur("took", time.Since(began).Round(time.Millisecond)).
		Msg("Wrote output")
	log.Info().
		Float64("peak_dbfs", lv.PeakDB).
		Float64("rms_dbfs", lv.RMSDB).
		Float64("crest_db", lv.CrestDB).
		Float64("correlation", lv.Correlation).
		Float64("loudness_lufs", lv.LoudnessLUFS).
		Msg("Levels")

	return nil
}

// fileSource closes the underlying file along with the decoded stream.
type fileSource struct {
	audio.Source
	f *os.File
}

func (s fileSource) Close() error {
	err := s.Source.Close()
	if ferr := s.f.Close(); err == nil {
		err = ferr
	}
	return err
}

func openTrack(reg *audio.Registry, path string) (audio.Source, error) {
	dec, ok := reg.ForPath(path)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported format, want one of %s", path, strings.Join(reg.Formats(), ", "))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return fileSource{Source: src, f: f}, nil
}
