// SPDX-License-Identifier: MIT
package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/linkpred/registry"
	"github.com/stretchr/testify/require"
)

type scoreFn func(x float64) float64

func TestRegister_FirstWins(t *testing.T) {
	t.Parallel()

	r := registry.New[scoreFn]("test")
	require.True(t, r.Register("double", func(x float64) float64 { return 2 * x }))
	require.False(t, r.Register("double", func(x float64) float64 { return -x }))

	fn, err := r.Resolve("double")
	require.NoError(t, err)
	require.Equal(t, 6.0, fn(3), "second registration must not override the first")
	require.Equal(t, 1, r.Len())
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	r := registry.New[scoreFn]("test")
	fn, err := r.Resolve("missing")
	require.Nil(t, fn)
	require.ErrorIs(t, err, registry.ErrStrategyNotFound)
	require.Contains(t, err.Error(), `"missing"`)
	require.False(t, r.Has("missing"))
}

func TestNames_Sorted(t *testing.T) {
	t.Parallel()

	r := registry.New[int]("ints")
	for _, n := range []string{"zeta", "alpha", "mid"} {
		r.Register(n, len(n))
	}
	require.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
	require.Equal(t, "ints", r.Family())
}

func TestRegister_EmptyNamePanics(t *testing.T) {
	t.Parallel()

	r := registry.New[int]("ints")
	require.Panics(t, func() { r.Register("", 1) })
}

func TestRegister_Concurrent(t *testing.T) {
	t.Parallel()

	r := registry.New[int]("ints")
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				r.Register(fmt.Sprintf("k%d", i), g)
				_, _ = r.Resolve(fmt.Sprintf("k%d", i))
			}
		}(g)
	}
	wg.Wait()
	require.Equal(t, 50, r.Len())
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	r := registry.New[scoreFn]("test")
	require.NotPanics(t, func() { r.MustRegister("id", func(x float64) float64 { return x }) })
	require.Panics(t, func() { r.MustRegister("id", func(x float64) float64 { return x }) })
}
