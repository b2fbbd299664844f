// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkpred/topology"
)

// graphFlags are shared by every command that reads a graph.
type graphFlags struct {
	graph      string
	nodes      int
	undirected bool
}

func (g *graphFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&g.graph, "graph", "", "Edge list file (u v [w])")
	cmd.Flags().IntVar(&g.nodes, "nodes", 0, "Minimum node count, for trailing isolated nodes")
	cmd.Flags().BoolVar(&g.undirected, "undirected", true, "Mirror every edge; overrides the config")
	_ = cmd.MarkFlagRequired("graph")
}

// resolveUndirected lets an explicit flag win over the config file.
func (g *graphFlags) resolveUndirected(cmd *cobra.Command, a *app) bool {
	if cmd.Flags().Changed("undirected") {
		return g.undirected
	}

	return a.cfg.Undirected
}

type scoreFlags struct {
	graphFlags
	pairs     string
	strategy  string
	epsilon   float64
	walkSteps int
	pathDepth int
}

func newScoreCmd(a *app) *cobra.Command {
	f := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score node pairs with a structural strategy",
		Long: `Score every pair of --pairs on --graph with one structural strategy
and print "src<TAB>trg<TAB>score" lines. See 'linkpred list' for names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runScore(cmd, f)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.pairs, "pairs", "", "Pair file (u v)")
	cmd.Flags().StringVar(&f.strategy, "strategy", topology.NameAdamicAdar, "Strategy name")
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", topology.DefaultEpsilon, "localPathIndex damping; overrides the config")
	cmd.Flags().IntVar(&f.walkSteps, "walk-steps", topology.DefaultWalkSteps, "localRandomWalk steps; overrides the config")
	cmd.Flags().IntVar(&f.pathDepth, "path-depth", topology.DefaultPathDepth, "localPathIndex depth; overrides the config")
	_ = cmd.MarkFlagRequired("pairs")

	return cmd
}

// topologyOptions merges config values with explicitly set flags.
func (a *app) topologyOptions(cmd *cobra.Command, eps float64, walk, depth int) []topology.Option {
	opts := a.cfg.TopologyOptions()
	if cmd.Flags().Changed("epsilon") {
		opts = append(opts, topology.WithEpsilon(eps))
	}
	if cmd.Flags().Changed("walk-steps") {
		opts = append(opts, topology.WithWalkSteps(walk))
	}
	if cmd.Flags().Changed("path-depth") {
		opts = append(opts, topology.WithPathDepth(depth))
	}

	return opts
}

func (a *app) runScore(cmd *cobra.Command, f *scoreFlags) error {
	if err := validateTopologyFlags(f.epsilon, f.walkSteps, f.pathDepth); err != nil {
		return err
	}
	start := time.Now()
	adj, err := openWith(f.graph, edgeReader(f.nodes, f.resolveUndirected(cmd, a)))
	if err != nil {
		return err
	}
	src, trg, err := readPairFile(f.pairs)
	if err != nil {
		return err
	}

	scores, err := topology.Score(f.strategy, adj, src, trg, a.topologyOptions(cmd, f.epsilon, f.walkSteps, f.pathDepth)...)
	if err != nil {
		return err
	}
	a.log.Info("scored", "strategy", f.strategy, "nodes", adj.Rows(), "edges", adj.NNZ(), "pairs", len(scores), "elapsed", time.Since(start))

	return writeScores(cmd.OutOrStdout(), src, trg, scores)
}
