// SPDX-License-Identifier: MIT

package sweep

import (
	"math"
	"math/rand"
	"sort"
)

// rngFromSeed returns a deterministic *rand.Rand; seed 0 is replaced by
// config.DefaultSeed upstream, so it is used verbatim here.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier (the sweep index)
// into a new seed with the SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sweepRNG is the independent stream of sweep idx.
func sweepRNG(seed int64, idx int) *rand.Rand {
	return rngFromSeed(deriveSeed(seed, uint64(idx)))
}

// shuffled returns a Fisher–Yates shuffled copy of a.
func shuffled(a []int, rng *rand.Rand) []int {
	out := append([]int(nil), a...)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// subsample draws round(fraction·n) distinct columns (at least one) and
// returns them ascending. fraction >= 1 returns nil, meaning "all".
func subsample(n int, fraction float64, rng *rand.Rand) []int {
	if fraction >= 1 || n == 0 {
		return nil
	}
	k := int(math.Round(fraction * float64(n)))
	if k < 1 {
		k = 1
	}
	cols := rng.Perm(n)[:k]
	sort.Ints(cols)

	return cols
}
