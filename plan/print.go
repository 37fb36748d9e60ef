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

// Format renders the node and its descendants in a style reminiscent
// of relational DBMS explain output: one header line per node,
// indented two spaces per depth, with the root omitting the "-> "
// marker, followed by indented Filter / Join Cond / Sort Key /
// extra_info lines in declaration order. Given identical inputs it
// produces identical bytes.
func (n *PlanNode) Format(indent int) string {
	var b strings.Builder
	n.format(&b, indent, true)
	return strings.TrimRight(b.String(), "\n")
}

func (n *PlanNode) format(b *strings.Builder, depth int, isRoot bool) {
	pad := strings.Repeat("  ", depth)
	marker := "-> "
	if isRoot {
		marker = ""
	}

	header := n.Op.String()
	if n.Table != "" {
		header += " on " + n.TableRef()
		if n.IndexName != "" {
			header += " using " + n.IndexName
		}
	}
	fmt.Fprintf(b, "%s%s%s  (cost=%.2f..%.2f rows=%.0f width=%.0f)\n",
		pad, marker, header, n.StartupCost, n.TotalCost, n.EstimatedRows, n.Width)

	linePad := pad + "  "
	if n.FilterCondition != "" {
		fmt.Fprintf(b, "%sFilter: %s\n", linePad, n.FilterCondition)
	}
	if n.JoinCondition != "" {
		fmt.Fprintf(b, "%sJoin Cond: %s\n", linePad, n.JoinCondition)
	}
	if len(n.SortKeys) > 0 {
		fmt.Fprintf(b, "%sSort Key: %s\n", linePad, strings.Join(n.SortKeys, ", "))
	}
	for _, e := range n.ExtraInfo {
		fmt.Fprintf(b, "%s%s: %s\n", linePad, e.Key, e.Value)
	}

	for _, c := range n.Children {
		c.format(b, depth+1, false)
	}
}

// Format renders the whole plan starting from its root.
func (p *ExecutionPlan) Format(verbose bool) string {
	header := fmt.Sprintf("Planning Time: %.3f ms\n", p.PlanningTimeMS)
	body := p.Root.Format(0)
	if !verbose {
		return body
	}
	return header + body
}
