// Copyright 2026 The Queryopt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package optimizer turns a logical query.Query and a catalog.Schema
// into physical plan.ExecutionPlans: a naive baseline that preserves
// declared join order and scans everything sequentially, and an
// optimized plan built through predicate pushdown, join reordering,
// access-path selection and join-algorithm selection.
//
// Planning is purely computational: no I/O, no goroutines, no shared
// mutable state beyond the Optimizer's own per-call notes buffer.
// An Optimizer is not safe for concurrent reuse across overlapping
// calls; independent Optimizer instances never need to coordinate.
package optimizer

import (
	"time"

	"github.com/pingcap-incubator/queryopt/catalog"
	"github.com/pingcap-incubator/queryopt/costmodel"
	"github.com/pingcap-incubator/queryopt/internal/logutil"
	"github.com/pingcap-incubator/queryopt/plan"
	"github.com/pingcap-incubator/queryopt/query"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Optimizer plans one Query at a time against a fixed Schema.
type Optimizer struct {
	schema *catalog.Schema
	cost   *costmodel.Model

	planning atomic.Bool
	notes    noteSink

	// planSeq is a monotonic counter used only for diagnostic logging,
	// to correlate log lines from the same planning call.
	planSeq atomic.Int64
}

// New returns an Optimizer that plans against schema using cfg's cost
// constants.
func New(schema *catalog.Schema, cfg costmodel.Config) *Optimizer {
	return &Optimizer{
		schema: schema,
		cost:   costmodel.New(cfg),
	}
}

// enter guards against concurrent reuse of a single Optimizer and
// resets the notes buffer. It panics on reentrant/concurrent use: that
// is a programming error, not a condition the CORE should silently
// tolerate.
func (o *Optimizer) enter() (seq int64, exit func()) {
	if !o.planning.CAS(false, true) {
		panic("optimizer: concurrent or reentrant use of a single Optimizer instance")
	}
	o.notes.reset()
	seq = o.planSeq.Inc()
	return seq, func() { o.planning.Store(false) }
}

// Optimize builds the optimized plan for q: predicate pushdown, join
// reordering by effective size, per-relation access-path choice,
// per-join algorithm choice, and finally Sort/Limit.
func (o *Optimizer) Optimize(q *query.Query) *plan.ExecutionPlan {
	seq, exit := o.enter()
	defer exit()
	start := time.Now()
	logutil.Logger().Debug("optimize: start", zap.Int64("seq", seq), zap.Int("tables", len(q.Tables)))

	root := o.buildOptimizedTree(q)
	root = o.applyFinalOperators(q, root)

	elapsed := time.Since(start)
	return plan.NewExecutionPlan(root, q.ToSQL(), msSince(elapsed), true, o.notes.snapshot())
}

// BuildNaivePlan builds the deliberately naive baseline: declared
// join order, sequential scans only, nested-loop joins only, every
// predicate folded into a single filter string on the outermost scan.
// It carries no optimization notes.
func (o *Optimizer) BuildNaivePlan(q *query.Query) *plan.ExecutionPlan {
	_, exit := o.enter()
	defer exit()
	start := time.Now()

	root := o.buildNaiveTree(q)

	elapsed := time.Since(start)
	return plan.NewExecutionPlan(root, q.ToSQL(), msSince(elapsed), false, nil)
}

func msSince(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// emptyResultNode is the root produced for a Query with no FROM tables
// (spec.md §8 scenario E): a single Result node with zero cost and
// zero rows.
func emptyResultNode() *plan.PlanNode {
	return &plan.PlanNode{Op: plan.ResultOp}
}
