// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"

	"github.com/katalvlaran/linkpred/sparse"
	"github.com/katalvlaran/linkpred/topology"
)

// Task is one evaluation: positives are hidden edges, negatives are
// sampled non-edges, and both are scored on Train.
type Task struct {
	Train          *sparse.CSR
	PosSrc, PosTrg []int
	NegSrc, NegTrg []int
}

// Result is the AUC-ROC of one strategy on a Task.
type Result struct {
	Strategy  string
	AUC       float64
	Positives int
	Negatives int
}

// Run scores the task with every strategy in names, in order, and returns
// one Result per strategy. The scorer's degree cache is shared across
// strategies. It stops at the first error.
func Run(s *topology.Scorer, task Task, names []string, opts ...topology.Option) ([]Result, error) {
	const op = "Run"
	if len(task.PosSrc) != len(task.PosTrg) || len(task.NegSrc) != len(task.NegTrg) {
		return nil, evaluateErrorf(op, fmt.Errorf("unpaired positives or negatives: %w", sparse.ErrShapeMismatch))
	}

	np, nn := len(task.PosSrc), len(task.NegSrc)
	src := append(append(make([]int, 0, np+nn), task.PosSrc...), task.NegSrc...)
	trg := append(append(make([]int, 0, np+nn), task.PosTrg...), task.NegTrg...)
	labels := make([]bool, np+nn)
	for k := 0; k < np; k++ {
		labels[k] = true
	}

	out := make([]Result, 0, len(names))
	for _, name := range names {
		scores, err := s.Score(name, task.Train, src, trg, opts...)
		if err != nil {
			return nil, evaluateErrorf(op, err)
		}
		auc, err := AUCROC(scores, labels)
		if err != nil {
			return nil, evaluateErrorf(op, fmt.Errorf("%s: %w", name, err))
		}
		out = append(out, Result{Strategy: name, AUC: auc, Positives: np, Negatives: nn})
	}

	return out, nil
}
