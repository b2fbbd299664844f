// SPDX-License-Identifier: MIT
package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/linkpred/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	// Not parallel: collectors are process-wide.
	ok := metrics.ScoresTotal.WithLabelValues("test", "observe", metrics.StatusOK)
	bad := metrics.ScoresTotal.WithLabelValues("test", "observe", metrics.StatusError)
	pairs := metrics.PairsScored.WithLabelValues("test", "observe")

	okBefore, badBefore, pairsBefore := testutil.ToFloat64(ok), testutil.ToFloat64(bad), testutil.ToFloat64(pairs)

	metrics.Observe("test", "observe", time.Now(), 5, nil)
	metrics.Observe("test", "observe", time.Now(), 7, errors.New("boom"))

	require.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	require.Equal(t, badBefore+1, testutil.ToFloat64(bad))
	require.Equal(t, pairsBefore+5, testutil.ToFloat64(pairs))
}
