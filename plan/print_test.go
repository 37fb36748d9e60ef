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

package plan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSingleScanNode(t *testing.T) {
	n := &PlanNode{
		Op:              SeqScanOp,
		Table:           "customers",
		StartupCost:     0,
		TotalCost:       204,
		EstimatedRows:   1000,
		Width:           120,
		FilterCondition: "country = 'USA'",
	}
	out := n.Format(0)
	assert.Equal(t, "Seq Scan on customers  (cost=0.00..204.00 rows=1000 width=120)\n  Filter: country = 'USA'", out)
}

func TestFormatNestsChildrenWithIndentAndMarker(t *testing.T) {
	inner := &PlanNode{Op: SeqScanOp, Table: "orders", TotalCost: 10, EstimatedRows: 5, Width: 8}
	outer := &PlanNode{Op: SeqScanOp, Table: "customers", TotalCost: 5, EstimatedRows: 3, Width: 8}
	join := &PlanNode{
		Op:            NestedLoopOp,
		TotalCost:     30,
		EstimatedRows: 15,
		Width:         16,
		JoinCondition: "customers.id = orders.customer_id",
		Children:      []*PlanNode{outer, inner},
	}

	out := join.Format(0)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "Nested Loop  (cost=0.00..30.00 rows=15 width=16)", lines[0])
	assert.Equal(t, "  Join Cond: customers.id = orders.customer_id", lines[1])
	assert.Equal(t, "  -> Seq Scan on customers  (cost=0.00..5.00 rows=3 width=8)", lines[2])
	assert.Equal(t, "  -> Seq Scan on orders  (cost=0.00..10.00 rows=5 width=8)", lines[3])
}

func TestFormatUsesAliasOverTableName(t *testing.T) {
	n := &PlanNode{Op: SeqScanOp, Table: "customers", Alias: "c", TotalCost: 1, EstimatedRows: 1, Width: 1}
	assert.Contains(t, n.Format(0), "Seq Scan on c ")
}

func TestFormatIndexScanIncludesIndexName(t *testing.T) {
	n := &PlanNode{Op: IndexScanOp, Table: "orders", IndexName: "idx_orders_customer_id", TotalCost: 1, EstimatedRows: 1, Width: 1}
	assert.Contains(t, n.Format(0), "using idx_orders_customer_id")
}

func TestTotalSubtreeCostIsMaxAcrossTree(t *testing.T) {
	child := &PlanNode{TotalCost: 500}
	root := &PlanNode{TotalCost: 10, Children: []*PlanNode{child}}
	assert.Equal(t, 500.0, root.TotalSubtreeCost())
}

func TestExecutionPlanFormatVerboseIncludesPlanningTime(t *testing.T) {
	ep := NewExecutionPlan(&PlanNode{Op: ResultOp}, "SELECT *", 1.5, true, nil)
	assert.Contains(t, ep.Format(true), "Planning Time: 1.500 ms")
	assert.NotContains(t, ep.Format(false), "Planning Time")
}
