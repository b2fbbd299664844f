// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"
	"math"
	"time"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/metrics"
	"github.com/katalvlaran/linkpred/sparse"
)

// Family is the metrics label of calibrated scores.
const Family = "embedding"

const (
	opDotScores = "DotScores"
	opLogPrior  = "LogPrior"
	opCalibrate = "Calibrate"
)

// DotScores returns emb[src[k],:]·emb[trg[k],:] for every pair.
// Indices are validated against the embedding rows.
//
// *mat.Dense rows are read in place; other mat.Matrix implementations are
// copied row by row into two reusable buffers.
func DotScores(emb mat.Matrix, src, trg []int) ([]float64, error) {
	if emb == nil {
		return nil, embeddingErrorf(opDotScores, ErrNilEmbedding)
	}
	n, d := emb.Dims()
	if err := sparse.ValidatePairs(n, src, trg); err != nil {
		return nil, embeddingErrorf(opDotScores, err)
	}

	out := make([]float64, len(src))
	if dense, ok := emb.(*mat.Dense); ok {
		for k := range src {
			out[k] = vek.Dot(dense.RawRowView(src[k]), dense.RawRowView(trg[k]))
		}
		return out, nil
	}

	u, v := make([]float64, d), make([]float64, d)
	for k := range src {
		mat.Row(u, src[k], emb)
		mat.Row(v, trg[k], emb)
		out[k] = vek.Dot(u, v)
	}

	return out, nil
}

// LogPrior returns ln p0(v) for every node, where p0 is the
// degree-proportional prior with degrees floored at 1, so isolated nodes
// get the smallest positive prior instead of ln 0.
func LogPrior(adj *sparse.CSR) ([]float64, error) {
	deg, err := sparse.Degrees(adj)
	if err != nil {
		return nil, embeddingErrorf(opLogPrior, err)
	}

	return logPrior(deg), nil
}

func logPrior(deg []float64) []float64 {
	p := make([]float64, len(deg))
	for v, d := range deg {
		p[v] = math.Max(d, 1)
	}
	floats.Scale(1/floats.Sum(p), p)
	for v := range p {
		p[v] = math.Log(p[v])
	}

	return p
}

// Calibrate scores each pair by the dot product of its embedding rows and,
// when model is calibration-eligible, adds ln p0(src) + ln p0(trg).
// Ineligible models get the raw dot product unchanged. Metrics carry the
// model name only when it is a known family, a registered trainer or
// eligible; anything else is recorded as metrics.StrategyUnknown.
//
// Implementation:
//   - Stage 1: adjacency square, embedding rows == n, pairs in range.
//   - Stage 2: raw dot products (DotScores).
//   - Stage 3: eligible models only: add the log-priors of both endpoints.
//
// Errors: ErrNilEmbedding, sparse.ErrNilMatrix, sparse.ErrNonSquare,
// sparse.ErrShapeMismatch (embedding rows, pair lengths, degree length),
// sparse.ErrIndexOutOfRange.
func Calibrate(emb mat.Matrix, src, trg []int, adj *sparse.CSR, model string, opts ...Option) (out []float64, err error) {
	start := time.Now()
	cfg := gatherOptions(opts...)
	defer func() { metrics.Observe(Family, cfg.metricLabel(model), start, len(out), err) }()

	if err = sparse.ValidateSquare(adj); err != nil {
		return nil, embeddingErrorf(opCalibrate, err)
	}
	if emb == nil {
		return nil, embeddingErrorf(opCalibrate, ErrNilEmbedding)
	}
	n := adj.Rows()
	if rows, _ := emb.Dims(); rows != n {
		return nil, embeddingErrorf(opCalibrate, fmt.Errorf("embedding has %d rows, graph has %d nodes: %w", rows, n, sparse.ErrShapeMismatch))
	}

	if out, err = DotScores(emb, src, trg); err != nil {
		return nil, embeddingErrorf(opCalibrate, err)
	}
	if _, ok := cfg.eligible[model]; !ok {
		return out, nil
	}

	deg := cfg.degrees
	if deg == nil {
		deg = adj.RowSums()
	} else if err = sparse.ValidateVecLen(deg, n); err != nil {
		return nil, embeddingErrorf(opCalibrate, err)
	}
	lp := logPrior(deg)
	for k := range out {
		out[k] += lp[src[k]] + lp[trg[k]]
	}

	return out, nil
}
