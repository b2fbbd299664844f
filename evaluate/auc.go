// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linkpred/sparse"
)

// AUCROC returns the area under the ROC curve of scores against labels
// (true = edge). Ties between a positive and a negative count one half.
//
// Implementation:
//   - Stage 1: validate lengths, finiteness, both classes present.
//   - Stage 2: sort copies by score (stat.SortWeightedLabeled).
//   - Stage 3: ROC over every distinct cutoff (stat.ROC), then the
//     trapezoidal integral of TPR over FPR.
//
// Errors: sparse.ErrShapeMismatch, sparse.ErrNaNInf, ErrSingleClass.
func AUCROC(scores []float64, labels []bool) (float64, error) {
	const op = "AUCROC"
	if len(scores) != len(labels) {
		return 0, evaluateErrorf(op, fmt.Errorf("len(scores)=%d, len(labels)=%d: %w", len(scores), len(labels), sparse.ErrShapeMismatch))
	}
	var pos, neg int
	for k, v := range scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, evaluateErrorf(op, fmt.Errorf("scores[%d]=%v: %w", k, v, sparse.ErrNaNInf))
		}
		if labels[k] {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0, evaluateErrorf(op, fmt.Errorf("positives=%d, negatives=%d: %w", pos, neg, ErrSingleClass))
	}

	y := append([]float64(nil), scores...)
	classes := append([]bool(nil), labels...)
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ := stat.ROC(nil, y, classes, nil)

	return integrate.Trapezoidal(fpr, tpr), nil
}
