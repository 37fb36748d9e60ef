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

	"github.com/pingcap-incubator/queryopt/costmodel"
	"github.com/pingcap-incubator/queryopt/plan"
	"github.com/pingcap-incubator/queryopt/query"
)

// hashJoinRowThreshold is the row count both sides of a join must
// exceed for a hash join to be chosen over a nested loop.
const hashJoinRowThreshold = 100

// buildOptimizedTree runs steps 1 through 4 of the optimized pipeline
// and assembles the left-deep join tree: pushdown, reordering, then
// one access path and (for every relation after the first) one join
// per step.
func (o *Optimizer) buildOptimizedTree(q *query.Query) *plan.PlanNode {
	if len(q.Tables) == 0 {
		return emptyResultNode()
	}

	assigned := o.assignPredicates(q)
	order := o.reorderTables(q, assigned)

	root := o.buildAccessPath(q, order[0], assigned)
	placed := map[string]bool{order[0].Ref(): true}
	for i := 1; i < len(order); i++ {
		ref := order[i]
		innerNode := o.buildAccessPath(q, ref, assigned)

		cond, ok := findJoinCondition(q, placed, ref.Ref())
		if !ok {
			// No JoinCondition connects ref to any already-placed
			// table: either the reordering put ref ahead of all its
			// neighbours, or the Query is malformed. Join
			// positionally against the running outer rather than
			// dropping the relation; the join condition's columns
			// stay empty.
			cond = query.JoinCondition{LeftRef: root.TableRef(), RightRef: ref.Ref()}
		}
		root = o.buildJoin(root, innerNode, cond)
		placed[ref.Ref()] = true
	}
	return root
}

// buildJoin is step 4: choose hash join when both sides' estimated
// row counts exceed hashJoinRowThreshold, otherwise nested loop.
func (o *Optimizer) buildJoin(outerNode, innerNode *plan.PlanNode, cond query.JoinCondition) *plan.PlanNode {
	outerCost := nodeCost(outerNode)
	innerCost := nodeCost(innerNode)
	joinCondStr := fmt.Sprintf("%s.%s = %s.%s", cond.LeftRef, cond.LeftCol, cond.RightRef, cond.RightCol)

	if outerCost.Rows > hashJoinRowThreshold && innerCost.Rows > hashJoinRowThreshold {
		hashNode := &plan.PlanNode{
			Op:            plan.HashOp,
			StartupCost:   innerCost.Total,
			TotalCost:     innerCost.Total * 1.1,
			EstimatedRows: innerCost.Rows,
			Width:         innerCost.Width,
			Children:      []*plan.PlanNode{innerNode},
		}
		cost := o.cost.HashJoin(outerCost, innerCost, costmodel.DefaultJoinSelectivity)
		o.notes.add(fmt.Sprintf("Hash join chosen for %s (both sides exceed %d rows)", joinCondStr, hashJoinRowThreshold))
		return &plan.PlanNode{
			Op:            plan.HashJoinOp,
			JoinCondition: joinCondStr,
			StartupCost:   cost.Startup,
			TotalCost:     cost.Total,
			EstimatedRows: cost.Rows,
			Width:         cost.Width,
			Children:      []*plan.PlanNode{outerNode, hashNode},
		}
	}

	cost := o.cost.NestedLoopJoin(outerCost, innerCost, nil)
	smallRows := innerCost.Rows
	if outerCost.Rows < smallRows {
		smallRows = outerCost.Rows
	}
	o.notes.add(fmt.Sprintf("Nested loop join chosen for %s (small table: %d rows)", joinCondStr, int64(smallRows)))
	return &plan.PlanNode{
		Op:            plan.NestedLoopOp,
		JoinCondition: joinCondStr,
		StartupCost:   cost.Startup,
		TotalCost:     cost.Total,
		EstimatedRows: cost.Rows,
		Width:         cost.Width,
		Children:      []*plan.PlanNode{outerNode, innerNode},
	}
}

// applyFinalOperators is step 5: wrap root in Sort when the query has
// an ORDER BY, then in Limit when it has a LIMIT. Either, both or
// neither may apply.
func (o *Optimizer) applyFinalOperators(q *query.Query, root *plan.PlanNode) *plan.PlanNode {
	if len(q.OrderBy) > 0 {
		keys := make([]string, len(q.OrderBy))
		for i, ob := range q.OrderBy {
			dir := "ASC"
			if ob.Desc {
				dir = "DESC"
			}
			keys[i] = fmt.Sprintf("%s %s", ob.Column, dir)
		}
		cost := o.cost.Sort(nodeCost(root), costmodel.DefaultWorkMemKB)
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
		o.notes.add(fmt.Sprintf("LIMIT %d reduces cost by early termination", n))
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
