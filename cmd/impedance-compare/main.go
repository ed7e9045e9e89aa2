// Command impedance-compare evaluates every radiation impedance model for one
// mouth geometry and writes the curves as CSV.
//
// Usage:
//
//	impedance-compare                             # defaults, CSV to stdout
//	impedance-compare -config impedance.yaml -o curves.csv
//	IMPEDANCE_RADIUS=0.003 impedance-compare -v   # small mouth, debug logging
//
// Settings come from defaults, the optional config file and IMPEDANCE_*
// environment variables, in increasing priority. Flags override all three.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	impedance "github.com/tphakala/go-radiation-impedance"
	"github.com/tphakala/go-radiation-impedance/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("impedance-compare failed")
	}
}

func run() error {
	configPath := flag.String("config", "", "Config file (yaml, toml, json or env)")
	output := flag.String("o", "", "Output CSV file (default stdout)")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *verbose {
		cfg.Output.LogLevel = zerolog.LevelDebugValue
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	sweep, err := impedance.NewSweep(cfg.Sweep.MinFreq, cfg.Sweep.MaxFreq, cfg.Sweep.Step)
	if err != nil {
		return err
	}
	medium := impedance.MediumAtTemperature(cfg.Medium.Temperature)

	log.Info().
		Float64("radius_m", cfg.Mouth.Radius).
		Float64("sphere_radius_m", cfg.Mouth.SphereRadius).
		Int("order", cfg.Mouth.Order).
		Float64("sound_speed", medium.SoundSpeed).
		Int("points", len(sweep)).
		Msg("evaluating models")

	if !(impedance.Laine{Radius: cfg.Mouth.Radius}).InAccurateRange() {
		log.Warn().Float64("radius_m", cfg.Mouth.Radius).Msg("radius outside the Laine fit range")
	}

	zSweep, err := impedance.NewSweep(cfg.Sweep.MinFreq, cfg.Sweep.ZMaxFreq, cfg.Sweep.Step)
	if err != nil {
		return err
	}
	models := impedance.ComparisonSet(medium, cfg.Mouth.Radius, cfg.Mouth.SphereRadius, cfg.Mouth.Order, cfg.Sweep.LaineStep, zSweep)

	start := time.Now()
	curves, err := impedance.EvaluateAll(models, sweep, cfg.Sweep.Parallel)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Bool("parallel", cfg.Sweep.Parallel).Msg("evaluation done")

	if pz, err := (impedance.PoleZero{Radius: cfg.Mouth.Radius}).Design(zSweep); err == nil {
		if pz.BelowMinimumRate() {
			log.Warn().
				Float64("sample_rate", pz.SampleRate).
				Float64("min_sample_rate", impedance.MinPoleZeroSampleRate).
				Msg("pole-zero design rate below the filter's intended range, raise Z_MAX_FREQ")
		}
		log.Info().
			Float64("sample_rate", pz.SampleRate).
			Float64("ca", pz.Ca).
			Float64("cb", pz.Cb).
			Float64("transition_hz", pz.TransitionFrequency).
			Bool("small_radius", pz.Corrected).
			Msg("pole-zero design")
	}

	logDeviations(curves, cfg.Sweep.MinFreq, cfg.Sweep.MaxFreq)

	w, closeFn, err := openOutput(cfg.Output.Path)
	if err != nil {
		return err
	}
	if err := writeCSV(w, curves); err != nil {
		_ = closeFn()
		return err
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}

	if cfg.Output.Path != "" {
		log.Info().Str("path", cfg.Output.Path).Msg("curves written")
	}
	return nil
}

func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}
