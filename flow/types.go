// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrGraphNil is returned when a nil graph is passed.
var ErrGraphNil = errors.New("flow: graph is nil")

// EdgeError is returned when an arc has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %d→%d: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures Dinic and MinVertexCut.
//   - Ctx: cancellation; nil means context.Background().
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - LevelRebuildInterval: rebuild the level graph every N augmentations (0 = never early).
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	LevelRebuildInterval int
}

// DefaultOptions returns background context and Epsilon 1e-9.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Epsilon: 1e-9}
}

// normalize fills zero values with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}
