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

	"github.com/pingcap-incubator/queryopt/query"
)

// assignPredicates is step 1 of the optimized pipeline: every
// table-qualified predicate is pushed down to the base table it
// references (the qualifier is resolved to a base name through
// Query.GetTableName, so a predicate on an alias and one on the
// underlying table name land in the same bucket). Predicates with no
// table qualifier are left unassigned: they cannot be pinned to a
// single relation and are neither pushed down nor folded into any
// access path's selectivity math, AND predicates whose logical_op is
// "OR" are pushed down like any other (the WHERE clause isn't
// restructured), but their selectivity still multiplies into the same
// product as every other pushed predicate on that table.
func (o *Optimizer) assignPredicates(q *query.Query) map[string][]query.Predicate {
	assigned := make(map[string][]query.Predicate)
	for _, p := range q.Predicates {
		if p.TableRef == "" {
			continue
		}
		table := q.GetTableName(p.TableRef)
		assigned[table] = append(assigned[table], p)
		o.notes.add(fmt.Sprintf("Pushed predicate '%s' down to table '%s'", query.PredicateString(p), table))
	}
	return assigned
}
