// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/config"
	"github.com/katalvlaran/linkpred/sparse"
)

// errParse marks malformed input files.
var errParse = errors.New("parse error")

// scanRows calls fn with the whitespace-separated fields of every
// non-blank, non-comment line of r.
func scanRows(r io.Reader, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if err := fn(line, fields); err != nil {
			return err
		}
	}

	return sc.Err()
}

func parseNode(line int, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("line %d: node %q: %w", line, s, errParse)
	}

	return v, nil
}

// readEdges parses "u v [w]" lines. n is the node count: the larger of
// minNodes and the highest id + 1.
func readEdges(r io.Reader, minNodes int, undirected bool) (*sparse.CSR, error) {
	var entries []sparse.Entry
	n := minNodes
	err := scanRows(r, func(line int, f []string) error {
		if len(f) != 2 && len(f) != 3 {
			return fmt.Errorf("line %d: want 'u v [w]', got %d fields: %w", line, len(f), errParse)
		}
		u, err := parseNode(line, f[0])
		if err != nil {
			return err
		}
		v, err := parseNode(line, f[1])
		if err != nil {
			return err
		}
		w := 1.0
		if len(f) == 3 {
			if w, err = strconv.ParseFloat(f[2], 64); err != nil {
				return fmt.Errorf("line %d: weight %q: %w", line, f[2], errParse)
			}
		}
		entries = append(entries, sparse.Entry{Row: u, Col: v, Value: w})
		n = max(n, u+1, v+1)

		return nil
	})
	if err != nil {
		return nil, err
	}

	var opts []sparse.Option
	if undirected {
		opts = append(opts, sparse.WithUndirected())
	}

	return sparse.NewCSR(n, n, entries, opts...)
}

// readPairs parses "u v" lines into parallel slices.
func readPairs(r io.Reader) (src, trg []int, err error) {
	err = scanRows(r, func(line int, f []string) error {
		if len(f) != 2 {
			return fmt.Errorf("line %d: want 'u v', got %d fields: %w", line, len(f), errParse)
		}
		u, err := parseNode(line, f[0])
		if err != nil {
			return err
		}
		v, err := parseNode(line, f[1])
		if err != nil {
			return err
		}
		src = append(src, u)
		trg = append(trg, v)

		return nil
	})

	return src, trg, err
}

// readEmbedding parses one row of floats per node; all rows must have the
// same width.
func readEmbedding(r io.Reader) (*mat.Dense, error) {
	var data []float64
	rows, cols := 0, 0
	err := scanRows(r, func(line int, f []string) error {
		if rows == 0 {
			cols = len(f)
		} else if len(f) != cols {
			return fmt.Errorf("line %d: %d columns, want %d: %w", line, len(f), cols, errParse)
		}
		for _, s := range f {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("line %d: value %q: %w", line, s, errParse)
			}
			data = append(data, v)
		}
		rows++

		return nil
	})
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("empty embedding: %w", errParse)
	}

	return mat.NewDense(rows, cols, data), nil
}

// openWith opens path and hands it to fn.
func openWith[T any](path string, fn func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	v, err := fn(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// writeScores prints "src trg score" lines.
func writeScores(w io.Writer, src, trg []int, scores []float64) error {
	bw := bufio.NewWriter(w)
	for k := range scores {
		fmt.Fprintf(bw, "%d\t%d\t%s\n", src[k], trg[k], strconv.FormatFloat(scores[k], 'g', -1, 64))
	}

	return bw.Flush()
}

// edgeReader adapts readEdges to openWith.
func edgeReader(minNodes int, undirected bool) func(io.Reader) (*sparse.CSR, error) {
	return func(r io.Reader) (*sparse.CSR, error) {
		return readEdges(r, minNodes, undirected)
	}
}

type pairList struct{ src, trg []int }

// readPairFile reads a pair file from path.
func readPairFile(path string) ([]int, []int, error) {
	p, err := openWith(path, func(r io.Reader) (pairList, error) {
		src, trg, err := readPairs(r)
		return pairList{src, trg}, err
	})

	return p.src, p.trg, err
}

// validateTopologyFlags reports out-of-range flag values as errors before
// they reach the panicking option constructors.
func validateTopologyFlags(eps float64, walk, depth int) error {
	cfg := config.Default()
	cfg.Topology = config.Topology{Epsilon: eps, WalkSteps: walk, PathDepth: depth}

	return cfg.Validate()
}
