// SPDX-License-Identifier: MIT

// Package config holds the file-backed settings of the linkpred CLI.
//
// Library packages are configured with functional options; this package
// maps a YAML document onto those options. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linkpred/embedding"
	"github.com/katalvlaran/linkpred/evaluate"
	"github.com/katalvlaran/linkpred/topology"
)

// ErrInvalidConfig indicates a setting outside its documented range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the root document.
type Config struct {
	LogLevel   string    `yaml:"log_level"`
	Undirected bool      `yaml:"undirected"`
	CacheSize  int       `yaml:"cache_size"`
	Topology   Topology  `yaml:"topology"`
	Embedding  Embedding `yaml:"embedding"`
	Evaluate   Evaluate  `yaml:"evaluate"`
}

// Topology mirrors the topology package options.
type Topology struct {
	Epsilon   float64 `yaml:"epsilon"`
	WalkSteps int     `yaml:"walk_steps"`
	PathDepth int     `yaml:"path_depth"`
}

// Embedding mirrors the embedding package options. A nil Eligible keeps
// embedding.DefaultEligible; an empty list disables calibration.
type Embedding struct {
	Eligible []string `yaml:"eligible"`
}

// Evaluate configures the evaluate command.
type Evaluate struct {
	Sampler      string   `yaml:"sampler"`
	TestFraction float64  `yaml:"test_fraction"`
	Seed         uint64   `yaml:"seed"`
	Strategies   []string `yaml:"strategies"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Undirected: true,
		CacheSize:  topology.DefaultCacheSize,
		Topology: Topology{
			Epsilon:   topology.DefaultEpsilon,
			WalkSteps: topology.DefaultWalkSteps,
			PathDepth: topology.DefaultPathDepth,
		},
		Evaluate: Evaluate{
			Sampler:      evaluate.SamplerUniform,
			TestFraction: 0.1,
			Seed:         1,
			Strategies:   topology.Models.Names(),
		},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field against the range its consumer accepts.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.CacheSize < 1 {
		return invalidf("cache_size=%d must be >= 1", c.CacheSize)
	}
	if eps := c.Topology.Epsilon; math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return invalidf("topology.epsilon=%v must be finite and >= 0", c.Topology.Epsilon)
	}
	if c.Topology.WalkSteps < 1 {
		return invalidf("topology.walk_steps=%d must be >= 1", c.Topology.WalkSteps)
	}
	if c.Topology.PathDepth < 2 {
		return invalidf("topology.path_depth=%d must be >= 2", c.Topology.PathDepth)
	}
	for _, name := range c.Embedding.Eligible {
		if name == "" {
			return invalidf("embedding.eligible contains an empty name")
		}
	}
	if !evaluate.Samplers.Has(c.Evaluate.Sampler) {
		return invalidf("evaluate.sampler=%q is not one of %v", c.Evaluate.Sampler, evaluate.Samplers.Names())
	}
	if !(c.Evaluate.TestFraction > 0 && c.Evaluate.TestFraction < 1) {
		return invalidf("evaluate.test_fraction=%v must be in (0,1)", c.Evaluate.TestFraction)
	}
	for _, name := range c.Evaluate.Strategies {
		if !topology.Models.Has(name) {
			return invalidf("evaluate.strategies: unknown strategy %q", name)
		}
	}

	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, invalidf("log_level=%q: %v", c.LogLevel, err)
	}

	return lvl, nil
}

// TopologyOptions converts the topology section into scorer options.
// Call Validate first; out-of-range values panic in the option
// constructors.
func (c Config) TopologyOptions() []topology.Option {
	return []topology.Option{
		topology.WithEpsilon(c.Topology.Epsilon),
		topology.WithWalkSteps(c.Topology.WalkSteps),
		topology.WithPathDepth(c.Topology.PathDepth),
	}
}

// EmbeddingOptions converts the embedding section into calibrator options.
func (c Config) EmbeddingOptions() []embedding.Option {
	if c.Embedding.Eligible == nil {
		return nil
	}

	return []embedding.Option{embedding.WithEligible(c.Embedding.Eligible...)}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}
