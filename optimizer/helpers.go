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
	"strings"

	"github.com/pingcap-incubator/queryopt/costmodel"
	"github.com/pingcap-incubator/queryopt/plan"
	"github.com/pingcap-incubator/queryopt/query"
)

// nodeCost reconstructs the costmodel.Cost quadruple a PlanNode was
// built from, so a later stage (Sort, Limit) can feed it back into the
// cost model without the tree carrying a parallel Cost field.
func nodeCost(n *plan.PlanNode) costmodel.Cost {
	return costmodel.Cost{
		Startup: n.StartupCost,
		Total:   n.TotalCost,
		Rows:    n.EstimatedRows,
		Width:   n.Width,
	}
}

// combinedPredicateString renders preds as they would appear in a
// WHERE clause: the first predicate bare, every later one prefixed by
// its own logical_op. Used both for the naive plan's single combined
// filter and for an access path's FilterCondition.
func combinedPredicateString(preds []query.Predicate) string {
	parts := make([]string, len(preds))
	for i, p := range preds {
		s := query.PredicateString(p)
		if i > 0 {
			s = p.LogicalOp + " " + s
		}
		parts[i] = s
	}
	return strings.Join(parts, " ")
}

// findJoinCondition locates the edge connecting incomingRef to some
// table already placed in the growing join tree, in either direction
// (the Builder always records a JoinCondition as Left=earlier,
// Right=newly-introduced at declaration time, but join reordering can
// place the declared-first side of an edge after its declared-second
// side). The returned condition is always oriented placed-side-as-Left,
// incoming-side-as-Right, regardless of how the original Query
// recorded it, so callers can render "<already-placed>.<col> =
// <incoming>.<col>" without caring which way the declaration ran.
//
// The search can miss even for a Query built through Builder.Join:
// reordering may place a relation ahead of every table it shares a
// JoinCondition with (the five-table categories..customers chain
// leaves customers with no placed neighbour). The reordered sequence
// is not checked for connectivity, and the caller then joins such a
// relation to the running outer with an empty join condition.
func findJoinCondition(q *query.Query, placed map[string]bool, incomingRef string) (query.JoinCondition, bool) {
	for _, j := range q.Joins {
		switch {
		case j.RightRef == incomingRef && placed[j.LeftRef]:
			return j, true
		case j.LeftRef == incomingRef && placed[j.RightRef]:
			return query.JoinCondition{
				LeftRef:  j.RightRef,
				LeftCol:  j.RightCol,
				RightRef: j.LeftRef,
				RightCol: j.LeftCol,
				JoinType: j.JoinType,
			}, true
		}
	}
	return query.JoinCondition{}, false
}
