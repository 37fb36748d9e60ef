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

import "github.com/google/uuid"

// ExecutionPlan wraps a root PlanNode together with the query it was
// built from and the bookkeeping the optimizer collected while
// building it. Plans are immutable after construction and own their
// PlanNode tree outright.
type ExecutionPlan struct {
	PlanID            string
	Root              *PlanNode
	SQL               string
	PlanningTimeMS    float64
	IsOptimized       bool
	OptimizationNotes []string
}

// NewExecutionPlan stamps root with a fresh plan ID and wraps it. The
// returned plan owns root exclusively.
func NewExecutionPlan(root *PlanNode, sql string, planningTimeMS float64, isOptimized bool, notes []string) *ExecutionPlan {
	return &ExecutionPlan{
		PlanID:            uuid.New().String(),
		Root:              root,
		SQL:               sql,
		PlanningTimeMS:    planningTimeMS,
		IsOptimized:       isOptimized,
		OptimizationNotes: notes,
	}
}

// TotalCost is the cost of the plan as a whole: the root's own
// subtree cost.
func (p *ExecutionPlan) TotalCost() float64 {
	return p.Root.TotalSubtreeCost()
}
