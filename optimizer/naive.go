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

	"github.com/pingcap-incubator/queryopt/plan"
	"github.com/pingcap-incubator/queryopt/query"
)

// buildNaiveTree builds the deliberately un-optimized baseline plan:
// every table is sequentially scanned in the order the query declared
// it, every join is a nested loop over that same declared order, and
// the full WHERE clause is folded into one combined filter_condition
// on the first (outermost) scan rather than pushed to the tables it
// actually constrains. ORDER BY and LIMIT still apply: the baseline's
// point of comparison is access-path and join-order choice, not
// whether the final result is correctly shaped.
func (o *Optimizer) buildNaiveTree(q *query.Query) *plan.PlanNode {
	if len(q.Tables) == 0 {
		return emptyResultNode()
	}

	nodes := make([]*plan.PlanNode, len(q.Tables))
	for i, t := range q.Tables {
		table := o.schema.Table(t.Name)
		cost := o.cost.SeqScan(table, 1.0)
		nodes[i] = &plan.PlanNode{
			Op:            plan.SeqScanOp,
			Table:         t.Name,
			Alias:         t.Alias,
			StartupCost:   cost.Startup,
			TotalCost:     cost.Total,
			EstimatedRows: cost.Rows,
			Width:         cost.Width,
		}
	}

	if len(q.Predicates) > 0 {
		nodes[0].FilterCondition = combinedPredicateString(q.Predicates)
	}

	root := nodes[0]
	for i := 1; i < len(nodes); i++ {
		cond := q.Joins[i-1]
		outerCost := nodeCost(root)
		innerCost := nodeCost(nodes[i])
		cost := o.cost.NestedLoopJoin(outerCost, innerCost, nil)
		root = &plan.PlanNode{
			Op:            plan.NestedLoopOp,
			JoinCondition: fmt.Sprintf("%s.%s = %s.%s", cond.LeftRef, cond.LeftCol, cond.RightRef, cond.RightCol),
			StartupCost:   cost.Startup,
			TotalCost:     cost.Total,
			EstimatedRows: cost.Rows,
			Width:         cost.Width,
			Children:      []*plan.PlanNode{root, nodes[i]},
		}
	}

	if len(q.OrderBy) > 0 {
		keys := make([]string, len(q.OrderBy))
		for i, ob := range q.OrderBy {
			dir := "ASC"
			if ob.Desc {
				dir = "DESC"
			}
			keys[i] = fmt.Sprintf("%s %s", ob.Column, dir)
		}
		cost := o.cost.Sort(nodeCost(root), 4096.0)
		root = &plan.PlanNode{
			Op:            plan.SortOp,
			StartupCost:   cost.Startup,
			TotalCost:     cost.Total,
			EstimatedRows: cost.Rows,
			Width:         cost.Width,
			SortKeys:      keys,
			Children:      []*plan.PlanNode{root},
		}
	}

	if q.LimitValue != nil {
		n := *q.LimitValue
		cost := o.cost.Limit(nodeCost(root), float64(n))
		root = &plan.PlanNode{
			Op:            plan.LimitOp,
			StartupCost:   cost.Startup,
			TotalCost:     cost.Total,
			EstimatedRows: cost.Rows,
			Width:         cost.Width,
			ExtraInfo:     []plan.ExtraEntry{{Key: "Rows", Value: fmt.Sprintf("%d", n)}},
			Children:      []*plan.PlanNode{root},
		}
	}

	return root
}
