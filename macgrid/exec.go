// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/macgrid
//
// exec.go — data-parallel traversal of faces and edges.
//
// Scheduling:
//   • Axes are processed one after another.
//   • Within an axis the linear range is cut into contiguous chunks and run
//     on an errgroup limited to GOMAXPROCS goroutines. There is no ordering
//     among callbacks of the same axis.
//   • The callback must be safe for concurrent use; it receives coordinates
//     by value and nothing else is shared.

package macgrid

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/chrysly/wildfire-VIP/grid"
)

// minChunk bounds the per-goroutine work so tiny grids do not spawn a
// goroutine per element.
const minChunk = 256

// ctxPollMask sets how often a worker polls for cancellation (every 1024 items).
const ctxPollMask = 1<<10 - 1

// ExecFaces calls f(axis, face) for every face, axis-major, concurrently
// within each axis. It returns once every call has returned.
func (mg *MacGrid) ExecFaces(f func(axis int, face grid.Coord)) {
	_ = mg.ExecFacesContext(context.Background(), func(axis int, face grid.Coord) error {
		f(axis, face)
		return nil
	})
}

// ExecFacesContext is ExecFaces with error propagation: the first error
// returned by f, or the cancellation of ctx, stops the traversal and is
// returned. Callbacks already running are allowed to finish.
func (mg *MacGrid) ExecFacesContext(ctx context.Context, f func(axis int, face grid.Coord) error) error {
	for axis := 0; axis < int(mg.grid.Dim()); axis++ {
		if err := execRange(ctx, mg.faceGrids[axis], axis, f); err != nil {
			logger.WithError(err).WithField("axis", axis).Debug("macgrid: face traversal stopped")
			return fmt.Errorf("ExecFaces: %w", err)
		}
	}

	return nil
}

// ExecEdges calls f(axis, edge) for every edge with the ExecFaces contract.
func (mg *MacGrid) ExecEdges(f func(axis int, edge grid.Coord)) {
	_ = mg.ExecEdgesContext(context.Background(), func(axis int, edge grid.Coord) error {
		f(axis, edge)
		return nil
	})
}

// ExecEdgesContext is the edge twin of ExecFacesContext.
func (mg *MacGrid) ExecEdgesContext(ctx context.Context, f func(axis int, edge grid.Coord) error) error {
	for axis := 0; axis < int(mg.grid.Dim()); axis++ {
		if err := execRange(ctx, mg.edgeGrids[axis], axis, f); err != nil {
			logger.WithError(err).WithField("axis", axis).Debug("macgrid: edge traversal stopped")
			return fmt.Errorf("ExecEdges: %w", err)
		}
	}

	return nil
}

// execRange fans f out over every node of g.
func execRange(ctx context.Context, g grid.Grid, axis int, f func(int, grid.Coord) error) error {
	n := g.NumberOfNodes()
	workers := runtime.GOMAXPROCS(0)
	chunk := max((n+workers-1)/workers, minChunk)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for lo := 0; lo < n && egCtx.Err() == nil; lo += chunk {
		start, end := lo, min(lo+chunk, n)
		eg.Go(func() error {
			for i := start; i < end; i++ {
				if i&ctxPollMask == 0 && egCtx.Err() != nil {
					return egCtx.Err()
				}
				if err := f(axis, g.NodeCoord(i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
