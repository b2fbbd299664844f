// SPDX-License-Identifier: MIT

package topology

import "fmt"

// topologyErrorf tags err with the strategy that detected it.
// The wrapped sentinel (from sparse or registry) stays matchable via errors.Is.
func topologyErrorf(strategy string, err error) error {
	return fmt.Errorf("topology.%s: %w", strategy, err)
}
