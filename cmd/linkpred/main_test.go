// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/builder"
	"github.com/katalvlaran/linkpred/config"
	"github.com/katalvlaran/linkpred/registry"
	"github.com/katalvlaran/linkpred/sparse"
)

// run executes the CLI with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

// write stores body in a fresh temp file and returns its path.
func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// edgeFile writes the upper triangle of adj as an edge list.
func edgeFile(t *testing.T, adj *sparse.CSR) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("# u v\n")
	for _, e := range adj.Entries() {
		if e.Row < e.Col {
			fmt.Fprintf(&b, "%d %d\n", e.Row, e.Col)
		}
	}

	return write(t, "edges.tsv", b.String())
}

const pathEdges = "0 1\n1 2\n2 3 # tail\n"

func TestList(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "list")
	require.NoError(t, err)
	require.Contains(t, out, "commonNeighbors")
	require.Contains(t, out, "localPathIndex")
	require.Regexp(t, regexp.MustCompile(`node2vec\s+true`), out)
	require.Regexp(t, regexp.MustCompile(`leigenmap\s+false`), out)
	require.Contains(t, out, "degreeBiased")
}

func TestScore(t *testing.T) {
	t.Parallel()
	graph := write(t, "g.tsv", pathEdges)
	pairs := write(t, "p.tsv", "0 2\n0 3\n")

	out, _, err := run(t, "score", "--graph", graph, "--pairs", pairs, "--strategy", "commonNeighbors")
	require.NoError(t, err)
	require.Equal(t, "0\t2\t1\n0\t3\t0\n", out)

	out, _, err = run(t, "score", "--graph", graph, "--pairs", pairs, "--strategy", "localPathIndex", "--epsilon", "0.5")
	require.NoError(t, err)
	require.Equal(t, "0\t2\t1\n0\t3\t0.5\n", out)
}

func TestScore_Errors(t *testing.T) {
	t.Parallel()
	graph := write(t, "g.tsv", pathEdges)
	pairs := write(t, "p.tsv", "0 2\n")

	_, _, err := run(t, "score", "--graph", graph, "--pairs", pairs, "--strategy", "katz")
	require.ErrorIs(t, err, registry.ErrStrategyNotFound)

	_, _, err = run(t, "score", "--graph", graph, "--pairs", pairs, "--walk-steps", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "score", "--graph", graph, "--pairs", write(t, "bad.tsv", "0 9\n"))
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)

	_, _, err = run(t, "score", "--graph", write(t, "bad.tsv", "0 x\n"), "--pairs", pairs)
	require.ErrorIs(t, err, errParse)

	_, _, err = run(t, "score", "--pairs", pairs)
	require.Error(t, err, "--graph is required")
}

func TestCalibrate(t *testing.T) {
	t.Parallel()
	// Star 0-1, 0-2 plus isolated node 3, known only from the embedding.
	graph := write(t, "g.tsv", "0 1\n0 2\n")
	emb := write(t, "emb.tsv", "1 1\n1 0\n0 1\n2 2\n")
	pairs := write(t, "p.tsv", "0 1\n1 3\n")

	out, _, err := run(t, "calibrate", "--graph", graph, "--pairs", pairs, "--embedding", emb, "--model", "leigenmap")
	require.NoError(t, err)
	require.Equal(t, "0\t1\t1\n1\t3\t2\n", out)

	out, _, err = run(t, "calibrate", "--graph", graph, "--pairs", pairs, "--embedding", emb, "--model", "deepwalk")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	// degrees [2 1 1 0] floored to [2 1 1 1]: 1 + ln(2/5) + ln(1/5)
	fields := strings.Split(lines[0], "\t")
	require.Equal(t, []string{"0", "1"}, fields[:2])
	got, err := strconv.ParseFloat(fields[2], 64)
	require.NoError(t, err)
	require.InDelta(t, 1+math.Log(0.08), got, 1e-12)

	_, _, err = run(t, "calibrate", "--graph", graph, "--pairs", pairs, "--embedding", write(t, "e.tsv", "1 2\n3\n"))
	require.ErrorIs(t, err, errParse)
}

func TestEvaluate_Holdout(t *testing.T) {
	t.Parallel()
	// Two K4 with (0,1) and (4,5) hidden.
	var b strings.Builder
	for _, base := range []int{0, 4} {
		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				if i == 0 && j == 1 {
					continue
				}
				fmt.Fprintf(&b, "%d %d\n", base+i, base+j)
			}
		}
	}
	graph := write(t, "g.tsv", b.String())
	holdout := write(t, "h.tsv", "0 1\n4 5\n")

	out, _, err := run(t, "evaluate", "--graph", graph, "--holdout", holdout,
		"--strategies", "commonNeighbors,jaccardIndex", "--sampler", "uniform", "--seed", "3")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`commonNeighbors\s+uniform\s+1\.0000`), out)
	require.Regexp(t, regexp.MustCompile(`jaccardIndex\s+uniform\s+1\.0000`), out)
}

func TestEvaluate_Split(t *testing.T) {
	t.Parallel()
	adj := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(50, 0.15))
	graph := edgeFile(t, adj)
	metricsOut := filepath.Join(t.TempDir(), "metrics.prom")

	out, _, err := run(t, "evaluate", "--graph", graph, "--sampler", "degreeBiased", "--test-fraction", "0.2", "--metrics-out", metricsOut)
	require.NoError(t, err)
	for _, name := range []string{"adamicAdar", "localRandomWalk", "preferentialAttachment"} {
		require.Regexp(t, regexp.MustCompile(name+`\s+degreeBiased\s+[01]\.\d{4}`), out)
	}

	prom, err := os.ReadFile(metricsOut)
	require.NoError(t, err)
	require.Contains(t, string(prom), "linkpred_scores_total")
	require.Contains(t, string(prom), "linkpred_degree_cache_lookups_total")

	_, _, err = run(t, "evaluate", "--graph", graph, "--test-fraction", "1.5")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigAndLogging(t *testing.T) {
	t.Parallel()
	cfg := write(t, "linkpred.yaml", "log_level: debug\ntopology:\n  epsilon: 0.25\n")
	graph := write(t, "g.tsv", pathEdges)
	pairs := write(t, "p.tsv", "0 3\n")

	out, logs, err := run(t, "--config", cfg, "score", "--graph", graph, "--pairs", pairs, "--strategy", "localPathIndex")
	require.NoError(t, err)
	require.Equal(t, "0\t3\t0.25\n", out)
	require.Contains(t, logs, "level=DEBUG")
	require.Contains(t, logs, "run=")

	_, logs, err = run(t, "--config", cfg, "--log-level", "error", "score", "--graph", graph, "--pairs", pairs)
	require.NoError(t, err)
	require.Empty(t, logs)

	_, _, err = run(t, "--config", write(t, "bad.yaml", "nope: 1\n"), "list")
	require.Error(t, err)
}
