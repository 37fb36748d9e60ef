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
	"sort"
	"strings"

	"github.com/pingcap-incubator/queryopt/query"
)

// relEffectiveSize is one relation's estimated post-filter row count:
// row_count times the product of the selectivities of every predicate
// pushed down to it. A relation with no pushed predicates keeps its
// full row_count.
type relEffectiveSize struct {
	ref       query.TableReference
	tableName string
	size      float64
	origIndex int
}

// reorderTables is step 2 of the optimized pipeline: relations are
// sorted ascending by effective size so the smallest drives the
// left-deep join tree. Ties keep their original relative order. A
// query with zero or one table needs no reordering.
func (o *Optimizer) reorderTables(q *query.Query, assigned map[string][]query.Predicate) []query.TableReference {
	infos := make([]relEffectiveSize, len(q.Tables))
	for i, t := range q.Tables {
		table := o.schema.Table(t.Name)
		stats := o.schema.Stats(t.Name)
		selectivity := 1.0
		for _, p := range assigned[t.Name] {
			selectivity *= stats.Selectivity(p.Column, p.Operator, p.Value)
		}
		infos[i] = relEffectiveSize{
			ref:       t,
			tableName: t.Name,
			size:      float64(table.RowCount) * selectivity,
			origIndex: i,
		}
	}

	sort.SliceStable(infos, func(i, j int) bool { return infos[i].size < infos[j].size })

	order := make([]query.TableReference, len(infos))
	changed := false
	for i, inf := range infos {
		order[i] = inf.ref
		if inf.origIndex != i {
			changed = true
		}
	}

	if changed && len(order) > 1 {
		refs := make([]string, len(order))
		for i, t := range order {
			refs[i] = t.Ref()
		}
		orig := make([]string, len(q.Tables))
		for i, t := range q.Tables {
			orig[i] = t.Ref()
		}
		o.notes.add(fmt.Sprintf("Reordered joins: %s (original: %s)", strings.Join(refs, " -> "), strings.Join(orig, " -> ")))
	}

	return order
}
