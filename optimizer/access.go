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

package optimizer

import (
	"fmt"
	"strings"

	"github.com/pingcap-incubator/queryopt/plan"
	"github.com/pingcap-incubator/queryopt/query"
)

// indexSelectivityThreshold is the cutoff below which an index scan is
// preferred over a sequential scan; at or above it, a full scan reads
// fewer total pages than the random I/O an index lookup would cost.
const indexSelectivityThreshold = 0.20

// buildAccessPath is step 3 of the optimized pipeline, applied once
// per relation in join order: pick seq scan, index scan or index-only
// scan for ref, folding in every predicate pushdown.go assigned to its
// base table.
func (o *Optimizer) buildAccessPath(q *query.Query, ref query.TableReference, assigned map[string][]query.Predicate) *plan.PlanNode {
	tableName := ref.Name
	table := o.schema.Table(tableName)
	stats := o.schema.Stats(tableName)
	preds := assigned[tableName]

	selectivity := 1.0
	columns := make([]string, len(preds))
	operators := make([]string, len(preds))
	for i, p := range preds {
		selectivity *= stats.Selectivity(p.Column, p.Operator, p.Value)
		columns[i] = p.Column
		operators[i] = p.Operator
	}

	filterCondition := ""
	if len(preds) > 0 {
		filterCondition = combinedPredicateString(preds)
	}

	idx, hasIndex := stats.BestIndex(columns, operators)
	if !hasIndex || selectivity >= indexSelectivityThreshold {
		if hasIndex {
			o.notes.add(fmt.Sprintf("Seq scan on '%s' (index not worth it for %.1f%% selectivity)", tableName, selectivity*100))
		} else {
			o.notes.add(fmt.Sprintf("No usable index on table '%s', using sequential scan", tableName))
		}
		cost := o.cost.SeqScan(table, selectivity)
		return &plan.PlanNode{
			Op:              plan.SeqScanOp,
			Table:           tableName,
			Alias:           ref.Alias,
			StartupCost:     cost.Startup,
			TotalCost:       cost.Total,
			EstimatedRows:   cost.Rows,
			Width:           cost.Width,
			FilterCondition: filterCondition,
		}
	}

	needed := referencedColumns(q, ref, columns)
	if indexCoversColumns(idx.Columns, needed) {
		o.notes.add(fmt.Sprintf("Using index '%s' on '%s' (selectivity: %.1f%%)", idx.Name, tableName, selectivity*100))
		cost := o.cost.IndexOnlyScan(table, idx, selectivity)
		return &plan.PlanNode{
			Op:            plan.IndexOnlyScanOp,
			Table:         tableName,
			Alias:         ref.Alias,
			IndexName:     idx.Name,
			StartupCost:   cost.Startup,
			TotalCost:     cost.Total,
			EstimatedRows: cost.Rows,
			Width:         cost.Width,
		}
	}

	o.notes.add(fmt.Sprintf("Using index '%s' on '%s' (selectivity: %.1f%%)", idx.Name, tableName, selectivity*100))
	cost := o.cost.IndexScan(table, idx, selectivity)
	return &plan.PlanNode{
		Op:              plan.IndexScanOp,
		Table:           tableName,
		Alias:           ref.Alias,
		IndexName:       idx.Name,
		StartupCost:     cost.Startup,
		TotalCost:       cost.Total,
		EstimatedRows:   cost.Rows,
		Width:           cost.Width,
		FilterCondition: filterCondition,
	}
}

// referencedColumns collects the bare column names a relation's
// access path must make available: its pushed-down predicate columns
// plus any column the query projects, groups or orders by that is
// qualified with ref's own reference (or unqualified, when ref is the
// query's only table). It is the candidate set an index-only scan
// must fully cover.
func referencedColumns(q *query.Query, ref query.TableReference, predicateColumns []string) []string {
	seen := make(map[string]bool, len(predicateColumns))
	var out []string
	add := func(col string) {
		if col != "" && !seen[col] {
			seen[col] = true
			out = append(out, col)
		}
	}
	for _, c := range predicateColumns {
		add(c)
	}

	single := len(q.Tables) == 1
	qualifiedFor := func(raw string) (string, bool) {
		if i := strings.IndexByte(raw, '.'); i >= 0 {
			if raw[:i] == ref.Ref() {
				return raw[i+1:], true
			}
			return "", false
		}
		return raw, single
	}

	for _, p := range q.Projections {
		if col, ok := qualifiedFor(p); ok {
			add(col)
		}
	}
	for _, g := range q.GroupBy {
		if col, ok := qualifiedFor(g); ok {
			add(col)
		}
	}
	for _, ob := range q.OrderBy {
		if col, ok := qualifiedFor(ob.Column); ok {
			add(col)
		}
	}
	return out
}

// indexCoversColumns reports whether every column in needed appears
// among idxColumns, regardless of order; an empty needed list reports
// false. Unlike catalog.Index.CoversColumns (a prefix test), an
// index-only scan only needs set coverage, since no further predicate
// ordering is involved once the heap is never visited.
func indexCoversColumns(idxColumns, needed []string) bool {
	if len(needed) == 0 {
		return false
	}
	set := make(map[string]bool, len(idxColumns))
	for _, c := range idxColumns {
		set[c] = true
	}
	for _, c := range needed {
		if !set[c] {
			return false
		}
	}
	return true
}
