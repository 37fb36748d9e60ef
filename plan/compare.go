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
	"fmt"
	"strings"
)

// CostDelta is the machine-readable half of ComparePlans: the same
// numbers, without the prose, for callers that want to log or assert
// on them instead of parsing a string.
type CostDelta struct {
	Plan1Cost     float64
	Plan2Cost     float64
	Delta         float64
	PercentChange float64
	Improved      bool
	Regressed     bool
}

// ComputeCostDelta compares p1's and p2's total costs.
func ComputeCostDelta(p1, p2 *ExecutionPlan) CostDelta {
	c1, c2 := p1.TotalCost(), p2.TotalCost()
	delta := c1 - c2
	cd := CostDelta{Plan1Cost: c1, Plan2Cost: c2, Delta: delta}
	switch {
	case delta > 0:
		cd.Improved = true
		if c1 != 0 {
			cd.PercentChange = (delta / c1) * 100
		}
	case delta < 0:
		cd.Regressed = true
	}
	return cd
}

// ComparePlans renders p1 and p2 side by side, labeled "PLAN 1
// (Before Optimization)" and "PLAN 2 (After Optimization)", followed
// by a cost delta line and the optimized plan's notes, bulleted.
func ComparePlans(p1, p2 *ExecutionPlan) string {
	var b strings.Builder

	b.WriteString("PLAN 1 (Before Optimization)\n")
	b.WriteString(p1.Root.Format(0))
	b.WriteString("\n\n")

	b.WriteString("PLAN 2 (After Optimization)\n")
	b.WriteString(p2.Root.Format(0))
	b.WriteString("\n\n")

	cd := ComputeCostDelta(p1, p2)
	switch {
	case cd.Improved:
		fmt.Fprintf(&b, "Cost Improvement: %.2f (%.1f%% reduction)\n", cd.Delta, cd.PercentChange)
	case cd.Regressed:
		fmt.Fprintf(&b, "Cost Increase: %.2f (optimization not beneficial)\n", -cd.Delta)
	default:
		b.WriteString("No cost difference\n")
	}

	if len(p2.OptimizationNotes) > 0 {
		b.WriteString("\nOptimization Notes:\n")
		for _, n := range p2.OptimizationNotes {
			fmt.Fprintf(&b, "  - %s\n", n)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
