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

package query

import (
	"fmt"
	"strings"
)

// ToSQL renders q as a SELECT statement. Line order is fixed: SELECT,
// FROM, JOIN(s), WHERE, GROUP BY, ORDER BY, LIMIT, OFFSET. Calling
// ToSQL repeatedly on the same Query yields identical strings.
func (q *Query) ToSQL() string {
	var b strings.Builder

	if len(q.Projections) == 0 {
		b.WriteString("SELECT *")
	} else {
		fmt.Fprintf(&b, "SELECT %s", strings.Join(q.Projections, ", "))
	}

	if len(q.Tables) == 0 {
		return b.String()
	}

	first := q.Tables[0]
	fmt.Fprintf(&b, "\nFROM %s", tableRefSQL(first))

	for i, j := range q.Joins {
		t := q.Tables[i+1]
		fmt.Fprintf(&b, "\n%s %s ON %s.%s = %s.%s", j.JoinType, tableRefSQL(t),
			j.LeftRef, j.LeftCol, j.RightRef, j.RightCol)
	}

	if len(q.Predicates) > 0 {
		b.WriteString("\nWHERE ")
		for i, p := range q.Predicates {
			if i > 0 {
				fmt.Fprintf(&b, " %s ", p.LogicalOp)
			}
			b.WriteString(PredicateString(p))
		}
	}

	if len(q.GroupBy) > 0 {
		fmt.Fprintf(&b, "\nGROUP BY %s", strings.Join(q.GroupBy, ", "))
	}

	if len(q.OrderBy) > 0 {
		parts := make([]string, len(q.OrderBy))
		for i, o := range q.OrderBy {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			parts[i] = fmt.Sprintf("%s %s", o.Column, dir)
		}
		fmt.Fprintf(&b, "\nORDER BY %s", strings.Join(parts, ", "))
	}

	if q.LimitValue != nil {
		fmt.Fprintf(&b, "\nLIMIT %d", *q.LimitValue)
	}
	if q.OffsetValue != nil {
		fmt.Fprintf(&b, "\nOFFSET %d", *q.OffsetValue)
	}

	return b.String()
}

func tableRefSQL(t TableReference) string {
	if t.Alias != "" {
		return fmt.Sprintf("%s AS %s", t.Name, t.Alias)
	}
	return t.Name
}

// PredicateString renders a single predicate as "[ref.]column op
// value", with value quoted when it is a string. It is shared between
// ToSQL's WHERE clause and the optimizer's "Pushed predicate ..."
// notes so both describe a predicate identically.
func PredicateString(p Predicate) string {
	col := p.Column
	if p.TableRef != "" {
		col = p.TableRef + "." + p.Column
	}
	if p.Operator == "IS NULL" || p.Operator == "IS NOT NULL" {
		return fmt.Sprintf("%s %s", col, p.Operator)
	}
	return fmt.Sprintf("%s %s %s", col, p.Operator, formatValue(p.Value))
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return fmt.Sprintf("'%s'", val)
	case []interface{}:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = formatValue(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case []string:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = fmt.Sprintf("'%s'", e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%v", val)
	}
}
