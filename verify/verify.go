// SPDX-License-Identifier: MIT
// Package: wildfire-VIP/verify
//
// verify.go — audit driver, violation collection and report.
//
// Contract:
//   • Checks run in the order returned by Checks (or the order given to Only).
//   • Violations from concurrent callbacks are appended under one mutex; the
//     order of the aggregated error is therefore unspecified within a check.
//   • Run never mutates the audited MacGrid.

package verify

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/chrysly/wildfire-VIP/grid"
	"github.com/chrysly/wildfire-VIP/macgrid"
)

const methodRun = "Run"

// Check names accepted by Only.
const (
	CheckShape     = "shape"
	CheckFaces     = "faces"
	CheckCells     = "cells"
	CheckEdges     = "edges"
	CheckTraversal = "traversal"
)

type checkFunc func(ctx context.Context, a *auditor, name string) (items int, err error)

var registry = map[string]checkFunc{
	CheckShape:     checkShape,
	CheckFaces:     checkFaces,
	CheckCells:     checkCells,
	CheckEdges:     checkEdges,
	CheckTraversal: checkTraversal,
}

// Checks lists every check name in default execution order.
func Checks() []string {
	return []string{CheckShape, CheckFaces, CheckCells, CheckEdges, CheckTraversal}
}

// Violation is one failed invariant. Axis is -1 when the violation concerns
// a cell or the grid as a whole.
type Violation struct {
	Check    string
	Property string
	Axis     int
	Coord    grid.Coord
	Detail   string
}

// Error implements error.
func (v Violation) Error() string {
	where := v.Coord.Format(grid.D3)
	if v.Axis >= 0 {
		where = fmt.Sprintf("axis %d %s", v.Axis, where)
	}
	msg := fmt.Sprintf("%s/%s at %s", v.Check, v.Property, where)
	if v.Detail != "" {
		msg += ": " + v.Detail
	}

	return msg
}

// Unwrap makes every Violation match ErrViolation.
func (v Violation) Unwrap() error { return ErrViolation }

// CheckResult summarizes one check.
type CheckResult struct {
	Name       string
	Items      int
	Violations int
}

// Report summarizes an audit.
type Report struct {
	Grid       string
	Checks     []CheckResult
	Violations int
	Truncated  bool // stopped at WithMaxViolations
}

// OK reports whether no violation was found.
func (r Report) OK() bool { return r.Violations == 0 }

// Run audits mg. The error is nil iff the report is OK and the audit was not
// canceled; otherwise it wraps ErrViolation (listing every collected
// violation), ErrUnknownCheck or the context error.
func Run(ctx context.Context, mg *macgrid.MacGrid, opts ...Option) (Report, error) {
	o := gatherOptions(opts)
	names := Checks()
	if len(o.only) > 0 {
		for _, n := range o.only {
			if _, ok := registry[n]; !ok {
				return Report{}, fmt.Errorf("%s: %q: %w", methodRun, n, ErrUnknownCheck)
			}
		}
		names = o.only
	}

	a := &auditor{mg: mg, opt: o}
	rep := Report{Grid: mg.String()}
	for _, name := range names {
		before := a.violations()
		items, err := registry[name](ctx, a, name)
		res := CheckResult{Name: name, Items: items, Violations: a.violations() - before}
		rep.Checks = append(rep.Checks, res)
		logger.WithFields(logrus.Fields{
			"check":      name,
			"items":      res.Items,
			"violations": res.Violations,
		}).Debug("verify: check done")

		if errors.Is(err, errLimit) {
			rep.Truncated = true
			break
		}
		if err != nil {
			rep.Violations = a.violations()
			return rep, fmt.Errorf("%s: %s: %w", methodRun, name, err)
		}
	}
	rep.Violations = a.violations()

	entry := logger.WithFields(logrus.Fields{
		"grid":       rep.Grid,
		"checks":     len(rep.Checks),
		"violations": rep.Violations,
		"truncated":  rep.Truncated,
	})
	if rep.OK() {
		entry.Info("verify: grid is consistent")
		return rep, nil
	}
	entry.Warn("verify: violations found")

	return rep, fmt.Errorf("%s: %d violation(s): %w", methodRun, rep.Violations, a.merr.ErrorOrNil())
}

// auditor carries the grid under audit and the shared violation sink.
type auditor struct {
	mg  *macgrid.MacGrid
	opt Options

	mu    sync.Mutex
	merr  *multierror.Error
	count int
}

// report records vs and returns errLimit once the configured limit is hit.
func (a *auditor) report(vs ...Violation) error {
	if len(vs) == 0 {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	limit := a.opt.maxViolations
	for _, v := range vs {
		if limit > 0 && a.count >= limit {
			return errLimit
		}
		a.count++
		a.merr = multierror.Append(a.merr, v)
	}
	if limit > 0 && a.count >= limit {
		return errLimit
	}

	return nil
}

func (a *auditor) violations() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.count
}

// near compares two positions component-wise within the audit tolerance.
func (a *auditor) near(p, q r3.Vec) bool {
	tol := a.opt.tol
	return scalar.EqualWithinAbsOrRel(p.X, q.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(p.Y, q.Y, tol, tol) &&
		scalar.EqualWithinAbsOrRel(p.Z, q.Z, tol, tol)
}
