// SPDX-License-Identifier: MIT

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/config"
	"github.com/katalvlaran/linkpred/embedding"
	"github.com/katalvlaran/linkpred/topology"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linkpred.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, topology.DefaultEpsilon, cfg.Topology.Epsilon)
	require.ElementsMatch(t, topology.Models.Names(), cfg.Evaluate.Strategies)
	require.Nil(t, cfg.EmbeddingOptions())
	require.Len(t, cfg.TopologyOptions(), 3)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)

	same, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, cfg, same)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `
log_level: debug
cache_size: 4
topology:
  epsilon: 0.01
  walk_steps: 5
embedding:
  eligible: [leigenmap]
evaluate:
  sampler: degreeBiased
  strategies: [commonNeighbors, adamicAdar]
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 4, cfg.CacheSize)
	require.Equal(t, 0.01, cfg.Topology.Epsilon)
	require.Equal(t, 5, cfg.Topology.WalkSteps)
	require.Equal(t, topology.DefaultPathDepth, cfg.Topology.PathDepth, "unset keys keep defaults")
	require.Equal(t, []string{"commonNeighbors", "adamicAdar"}, cfg.Evaluate.Strategies)
	require.True(t, cfg.Undirected)

	// the eligible override reaches the calibrator
	require.Len(t, cfg.EmbeddingOptions(), 1)
	require.Equal(t, []string{embedding.FamilyLEigenMap}, cfg.Embedding.Eligible)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"unknown key", "colour: blue\n", false},
		{"bad yaml", "topology: [\n", false},
		{"log level", "log_level: loud\n", true},
		{"cache size", "cache_size: 0\n", true},
		{"epsilon", "topology: {epsilon: -1}\n", true},
		{"epsilon nan", "topology: {epsilon: .nan}\n", true},
		{"walk steps", "topology: {walk_steps: 0}\n", true},
		{"path depth", "topology: {path_depth: 1}\n", true},
		{"eligible", "embedding: {eligible: ['']}\n", true},
		{"sampler", "evaluate: {sampler: greedy}\n", true},
		{"fraction", "evaluate: {test_fraction: 1}\n", true},
		{"strategy", "evaluate: {strategies: [katz]}\n", true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load(writeFile(t, tc.body))
			require.Error(t, err)
			if tc.invalid {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				require.NotErrorIs(t, err, config.ErrInvalidConfig)
			}
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
