// SPDX-License-Identifier: MIT

package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/inuritdino/Principal-Feature-Analysis/matrix"
)

// Sentinel errors.
var (
	// ErrObservations indicates an unusable observation count.
	ErrObservations = errors.New("synth: invalid number of observations")

	// ErrUnknownKind indicates an unknown generator name.
	ErrUnknownKind = errors.New("synth: unknown dataset kind")

	// ErrStateFeature indicates a state feature outside the dataset.
	ErrStateFeature = errors.New("synth: state feature out of range")
)

// Dataset is a generated feature-major table.
type Dataset struct {
	Name    string
	Rows    [][]float64
	Outputs int
}

// Matrix converts d into a validated FeatureMatrix.
func (d Dataset) Matrix() (*matrix.FeatureMatrix, error) {
	return matrix.NewFeatureMatrix(d.Rows, d.Outputs)
}

// Option customizes a generator.
type Option func(*genConfig)

type genConfig struct {
	rng          *rand.Rand
	stateFeature int
}

func newConfig(opts []Option) *genConfig {
	c := &genConfig{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithSeed seeds the generator.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *genConfig) { c.rng = r }
}

// WithStateFeature selects which feature of a graph-shaped dataset is
// copied into the state row. Panics on negative input.
func WithStateFeature(i int) Option {
	if i < 0 {
		panic("synth: WithStateFeature(negative)")
	}
	return func(c *genConfig) { c.stateFeature = i }
}

// Generator builds a dataset with n observations.
type Generator func(n int, opts ...Option) (Dataset, error)

var registry = map[string]Generator{
	"xor":               XOR,
	"constant":          func(n int, opts ...Option) (Dataset, error) { return Constant(n, 3, opts...) },
	"proportional":      Proportional,
	"product_chain":     ProductChain,
	"bridge":            Bridge,
	"islands":           Islands,
	"alternative_split": AlternativeSplit,
}

// Names lists the registered dataset kinds, ascending.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByName runs the generator registered under name.
func ByName(name string, n int, opts ...Option) (Dataset, error) {
	gen, ok := registry[name]
	if !ok {
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	return gen(n, opts...)
}

// XOR returns the interaction dataset: row 0 is the state y = x1 XOR x2,
// rows 1 and 2 are x1 and x2, row 3 is x3. The design is a balanced full
// factorial (n must be a positive multiple of 4) whose observation order is
// shuffled, so x1, x2 and x3 are each exactly marginally independent of y,
// while {x1, x2} jointly determine it.
func XOR(n int, opts ...Option) (Dataset, error) {
	if n < 4 || n%4 != 0 {
		return Dataset{}, fmt.Errorf("%w: XOR needs a positive multiple of 4, got %d", ErrObservations, n)
	}
	c := newConfig(opts)
	rows := alloc(4, n)
	for col, i := range c.rng.Perm(n) {
		x1, x2 := i%2, (i/2)%2
		rows[0][col] = float64(x1 ^ x2)
		rows[1][col] = float64(x1)
		rows[2][col] = float64(x2)
		rows[3][col] = float64(i / 4)
	}

	return Dataset{Name: "xor", Rows: rows, Outputs: 1}, nil
}

// Constant returns features+1 constant rows (one state row); every test on
// it is degenerate.
func Constant(n, features int, _ ...Option) (Dataset, error) {
	if n < 1 || features < 1 {
		return Dataset{}, fmt.Errorf("%w: constant needs n >= 1 and features >= 1", ErrObservations)
	}
	rows := alloc(features+1, n)
	for r := range rows {
		for i := range rows[r] {
			rows[r][i] = float64(r)
		}
	}

	return Dataset{Name: "constant", Rows: rows, Outputs: 1}, nil
}

// Proportional: x1 = 0.6·x0, x2 = 0.3·x0 + 1.5·x1.
func Proportional(n int, opts ...Option) (Dataset, error) {
	return shaped("proportional", n, 3, opts, func(x [][]float64, i int) {
		x[1][i] = 0.6 * x[0][i]
		x[2][i] = 0.3*x[0][i] + 1.5*x[1][i]
	})
}

// ProductChain: x3 = 2·x0·x1·x2, x4 = x0·x1.
func ProductChain(n int, opts ...Option) (Dataset, error) {
	return shaped("product_chain", n, 5, opts, func(x [][]float64, i int) {
		x[3][i] = 2 * x[0][i] * x[1][i] * x[2][i]
		x[4][i] = x[0][i] * x[1][i]
	})
}

// Bridge: x2 = 0.01·x0 + 5, x3 = x0·x1², x4 = exp(-x1).
func Bridge(n int, opts ...Option) (Dataset, error) {
	return shaped("bridge", n, 5, opts, func(x [][]float64, i int) {
		x[2][i] = 0.01*x[0][i] + 5
		x[3][i] = x[0][i] * x[1][i] * x[1][i]
		x[4][i] = math.Exp(-x[1][i])
	})
}

// Islands: x2 = 0.01·x0 + 5, x3 = x1², x4 = exp(-x1).
func Islands(n int, opts ...Option) (Dataset, error) {
	return shaped("islands", n, 5, opts, func(x [][]float64, i int) {
		x[2][i] = 0.01*x[0][i] + 5
		x[3][i] = x[1][i] * x[1][i]
		x[4][i] = math.Exp(-x[1][i])
	})
}

// AlternativeSplit: x2 = 14·x1 + 0.01, x0 = x1·x3² + 10·exp(-x4).
func AlternativeSplit(n int, opts ...Option) (Dataset, error) {
	return shaped("alternative_split", n, 5, opts, func(x [][]float64, i int) {
		x[2][i] = 14*x[1][i] + 0.01
		x[0][i] = x[1][i]*x[3][i]*x[3][i] + 10*math.Exp(-x[4][i])
	})
}

// shaped draws p uniform features on [0,5), applies relate per observation
// and prepends the state row.
func shaped(name string, n, p int, opts []Option, relate func(x [][]float64, i int)) (Dataset, error) {
	if n < 1 {
		return Dataset{}, fmt.Errorf("%w: %s needs n >= 1, got %d", ErrObservations, name, n)
	}
	c := newConfig(opts)
	if c.stateFeature >= p {
		return Dataset{}, fmt.Errorf("%w: %d of %d", ErrStateFeature, c.stateFeature, p)
	}

	x := alloc(p, n)
	for i := 0; i < n; i++ {
		for f := 0; f < p; f++ {
			x[f][i] = 5 * c.rng.Float64()
		}
		relate(x, i)
	}

	rows := make([][]float64, 0, p+1)
	rows = append(rows, append([]float64(nil), x[c.stateFeature]...))
	rows = append(rows, x...)

	return Dataset{Name: name, Rows: rows, Outputs: 1}, nil
}

func alloc(rows, n int) [][]float64 {
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, n)
	}

	return out
}
