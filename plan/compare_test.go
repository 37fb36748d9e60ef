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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCostDeltaImproved(t *testing.T) {
	p1 := NewExecutionPlan(&PlanNode{Op: SeqScanOp, TotalCost: 100}, "", 0, false, nil)
	p2 := NewExecutionPlan(&PlanNode{Op: IndexScanOp, TotalCost: 40}, "", 0, true, nil)

	cd := ComputeCostDelta(p1, p2)
	assert.True(t, cd.Improved)
	assert.False(t, cd.Regressed)
	assert.InDelta(t, 60, cd.Delta, 0.001)
	assert.InDelta(t, 60, cd.PercentChange, 0.001)
}

func TestComputeCostDeltaRegressed(t *testing.T) {
	p1 := NewExecutionPlan(&PlanNode{Op: SeqScanOp, TotalCost: 10}, "", 0, false, nil)
	p2 := NewExecutionPlan(&PlanNode{Op: IndexScanOp, TotalCost: 40}, "", 0, true, nil)

	cd := ComputeCostDelta(p1, p2)
	assert.False(t, cd.Improved)
	assert.True(t, cd.Regressed)
}

func TestComparePlansRendersNotesAndHeaders(t *testing.T) {
	p1 := NewExecutionPlan(&PlanNode{Op: SeqScanOp, Table: "orders", TotalCost: 100, EstimatedRows: 1000, Width: 60}, "", 0, false, nil)
	p2 := NewExecutionPlan(&PlanNode{Op: IndexScanOp, Table: "orders", TotalCost: 40, EstimatedRows: 100, Width: 60},
		"", 0, true, []string{"Pushed predicate 'orders.status = shipped' down to table 'orders'"})

	out := ComparePlans(p1, p2)
	assert.Contains(t, out, "PLAN 1 (Before Optimization)")
	assert.Contains(t, out, "PLAN 2 (After Optimization)")
	assert.Contains(t, out, "Cost Improvement: 60.00 (60.0% reduction)")
	assert.Contains(t, out, "Optimization Notes:")
	assert.Contains(t, out, "Pushed predicate 'orders.status = shipped' down to table 'orders'")
}
