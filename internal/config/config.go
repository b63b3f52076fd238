// SPDX-License-Identifier: EPL-2.0

// Package config resolves the command line settings. Values are layered
// with later sources winning: defaults, a YAML file, the environment, then
// flags given explicitly on the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/beatmix"
	"github.com/ik5/beatmix/resample"
	"github.com/ik5/beatmix/tempo"
	"github.com/ik5/beatmix/transition"
)

const (
	EnvConfig   = "BEATMIX_CONFIG"
	EnvLogLevel = "BEATMIX_LOG_LEVEL"
)

var ErrUsage = errors.New("usage")

// Config is everything one run needs.
type Config struct {
	A, B   string // input paths
	Output string // output path, "-" for stdout

	Fade          time.Duration
	Envelope      transition.Envelope
	BlockSize     int
	Kernel        resample.Kernel
	ZeroCrossings int
	Detection     tempo.Detection
	MinBPM        float64
	MaxBPM        float64

	LogLevel string
	LogJSON  bool
}

func Default() Config {
	mix := beatmix.DefaultConfig()

	return Config{
		Fade:          mix.Fade,
		Envelope:      mix.Envelope,
		BlockSize:     mix.BlockSize,
		Kernel:        mix.Resampler.Kernel,
		ZeroCrossings: mix.Resampler.ZeroCrossings,
		Detection:     mix.Tempo.Detection,
		MinBPM:        mix.Tempo.MinBPM,
		MaxBPM:        mix.Tempo.MaxBPM,
		LogLevel:      "info",
	}
}

// Mix converts c to the pipeline's configuration.
func (c Config) Mix() beatmix.Config {
	mix := beatmix.DefaultConfig()

	mix.Fade = c.Fade
	mix.Envelope = c.Envelope
	mix.BlockSize = c.BlockSize
	mix.Resampler.Kernel = c.Kernel
	mix.Resampler.ZeroCrossings = c.ZeroCrossings
	mix.Tempo.Detection = c.Detection
	mix.Tempo.MinBPM = c.MinBPM
	mix.Tempo.MaxBPM = c.MaxBPM

	return mix
}

// file mirrors the YAML layout. Pointers tell an absent key from a zero.
type file struct {
	Fade          string   `yaml:"fade"`
	Envelope      string   `yaml:"envelope"`
	BlockSize     *int     `yaml:"block_size"`
	Kernel        string   `yaml:"kernel"`
	ZeroCrossings *int     `yaml:"zero_crossings"`
	Detection     string   `yaml:"detection"`
	MinBPM        *float64 `yaml:"min_bpm"`
	MaxBPM        *float64 `yaml:"max_bpm"`

	Log struct {
		Level string `yaml:"level"`
		JSON  *bool  `yaml:"json"`
	} `yaml:"log"`
}

// Decode applies the YAML document in r on top of c.
func (c *Config) Decode(r io.Reader) error {
	var f file

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: %w", err)
	}

	var err error
	if f.Fade != "" {
		if c.Fade, err = time.ParseDuration(f.Fade); err != nil {
			return fmt.Errorf("config: fade: %w", err)
		}
	}
	if f.Envelope != "" {
		if c.Envelope, err = transition.ParseEnvelope(f.Envelope); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if f.Kernel != "" {
		if c.Kernel, err = resample.ParseKernel(f.Kernel); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if f.Detection != "" {
		if c.Detection, err = tempo.ParseDetection(f.Detection); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if f.BlockSize != nil {
		c.BlockSize = *f.BlockSize
	}
	if f.ZeroCrossings != nil {
		c.ZeroCrossings = *f.ZeroCrossings
	}
	if f.MinBPM != nil {
		c.MinBPM = *f.MinBPM
	}
	if f.MaxBPM != nil {
		c.MaxBPM = *f.MaxBPM
	}
	if f.Log.Level != "" {
		c.LogLevel = f.Log.Level
	}
	if f.Log.JSON != nil {
		c.LogJSON = *f.Log.JSON
	}

	return nil
}

// Load reads the YAML file at path on top of c.
func (c *Config) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return c.Decode(f)
}

// Parse resolves the configuration for one run from the command line args
// (without the program name) and getenv.
func Parse(name string, args []string, getenv func(string) string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] <track-a> <track-b> <out.wav|->\n", name)
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "YAML config file (env "+EnvConfig+")")
		fade       = fs.Duration("fade", cfg.Fade, "crossfade length")
		envelope   = fs.String("envelope", cfg.Envelope.String(), "gain curve: equal-power, linear or raised-cosine")
		block      = fs.Int("block", cfg.BlockSize, "frames per tempo ramp step")
		kernel     = fs.String("kernel", cfg.Kernel.String(), "resampling kernel: sinc or cubic")
		zc         = fs.Int("zero-crossings", cfg.ZeroCrossings, "sinc kernel half-width in zero crossings")
		detection  = fs.String("detection", cfg.Detection.String(), "onset detection: spectral-flux or energy")
		minBPM     = fs.Float64("min-bpm", cfg.MinBPM, "lowest tempo considered")
		maxBPM     = fs.Float64("max-bpm", cfg.MaxBPM, "highest tempo considered")
		logLevel   = fs.String("log-level", cfg.LogLevel, "log level (env "+EnvLogLevel+")")
		logJSON    = fs.Bool("log-json", cfg.LogJSON, "log as JSON")
	)

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() != 3 {
		fs.Usage()
		return cfg, fmt.Errorf("%w: want 3 arguments, got %d", ErrUsage, fs.NArg())
	}
	cfg.A, cfg.B, cfg.Output = fs.Arg(0), fs.Arg(1), fs.Arg(2)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := getenv(EnvConfig)
	if set["config"] {
		path = *configPath
	}
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return cfg, err
		}
	}

	if lvl := getenv(EnvLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}

	var err error
	for name := range set {
		switch name {
		case "fade":
			cfg.Fade = *fade
		case "envelope":
			cfg.Envelope, err = transition.ParseEnvelope(*envelope)
		case "block":
			cfg.BlockSize = *block
		case "kernel":
			cfg.Kernel, err = resample.ParseKernel(*kernel)
		case "zero-crossings":
			cfg.ZeroCrossings = *zc
		case "detection":
			cfg.Detection, err = tempo.ParseDetection(*detection)
		case "min-bpm":
			cfg.MinBPM = *minBPM
		case "max-bpm":
			cfg.MaxBPM = *maxBPM
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-json":
			cfg.LogJSON = *logJSON
		}
		if err != nil {
			return cfg, fmt.Errorf("-%s: %w", name, err)
		}
	}

	if cfg.Fade <= 0 {
		return cfg, fmt.Errorf("%w: fade must be positive, got %v", ErrUsage, cfg.Fade)
	}

	return cfg, nil
}
