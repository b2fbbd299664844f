// SPDX-License-Identifier: MIT

package builder

const (
	methodIsolated   = "Isolated"
	minIsolatedNodes = 1
)

// Isolated returns a Constructor that adds n nodes without edges.
// Degree-zero fixtures exercise the scorers' zero-degree policies.
func Isolated(n int) Constructor {
	return func(acc *accumulator, _ builderConfig) error {
		if err := validateMin(methodIsolated, n, minIsolatedNodes); err != nil {
			return err
		}
		acc.addNodes(n)

		return nil
	}
}
