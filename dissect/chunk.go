// SPDX-License-Identifier: MIT

package dissect

// Chunk splits order into consecutive clusters of at most clusterSize
// elements. clusterSize < 1 yields a single cluster. The input is not
// aliased.
func Chunk(order []int, clusterSize int) [][]int {
	if len(order) == 0 {
		return nil
	}
	if clusterSize < 1 || clusterSize > len(order) {
		clusterSize = len(order)
	}
	out := make([][]int, 0, (len(order)+clusterSize-1)/clusterSize)
	for start := 0; start < len(order); start += clusterSize {
		end := start + clusterSize
		if end > len(order) {
			end = len(order)
		}
		out = append(out, append([]int(nil), order[start:end]...))
	}

	return out
}
