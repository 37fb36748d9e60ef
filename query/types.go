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

// Package query is the logical query model: an immutable-once-built
// description of a SELECT over one or more tables with equi-joins,
// conjunctive predicates, optional grouping, ordering and a row
// limit. It is constructed through the fluent Builder and never
// mutated by the optimizer.
package query

// JoinType enumerates the join kinds a JoinCondition can carry. Only
// SQL rendering reads it: the optimizer reorders and costs every join
// as an inner equi-join, whatever its JoinType.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftOuterJoin
	RightOuterJoin
)

func (jt JoinType) String() string {
	switch jt {
	case LeftOuterJoin:
		return "LEFT JOIN"
	case RightOuterJoin:
		return "RIGHT JOIN"
	default:
		return "JOIN"
	}
}

// TableReference names one relation in the FROM/JOIN list, optionally
// under an alias.
type TableReference struct {
	Name  string
	Alias string
}

// Ref returns the alias when present, otherwise the base table name —
// the identifier other clauses use to refer back to this relation.
func (t TableReference) Ref() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// JoinCondition is one equi-join edge: Left.LeftCol = Right.RightCol.
// By construction (see Builder.Join) RightRef always names the table
// that particular join clause introduces.
type JoinCondition struct {
	LeftRef  string
	LeftCol  string
	RightRef string
	RightCol string
	JoinType JoinType
}

// Predicate is a single WHERE-clause comparison. TableRef is empty
// when the predicate carries no table qualifier (no dot); such
// predicates are not pushed down to a single relation by the
// optimizer (spec §4.4 step 1).
type Predicate struct {
	TableRef  string
	Column    string
	Operator  string
	Value     interface{}
	LogicalOp string // "AND" or "OR"; the optimizer's selectivity math treats both as AND.
}

// OrderByItem is one ORDER BY key.
type OrderByItem struct {
	Column string
	Desc   bool
}

// Query is the logical request the optimizer plans. Zero value is a
// query with no tables (spec §8 scenario E, the empty FROM clause).
type Query struct {
	Projections []string
	Tables      []TableReference
	Joins       []JoinCondition
	Predicates  []Predicate
	GroupBy     []string
	OrderBy     []OrderByItem
	LimitValue  *int64
	OffsetValue *int64
}

// GetTableName resolves ref — an alias or a base table name — to the
// base table name. If ref matches neither an alias nor a name of any
// declared TableReference, it is returned unchanged.
func (q *Query) GetTableName(ref string) string {
	for _, t := range q.Tables {
		if t.Alias != "" && t.Alias == ref {
			return t.Name
		}
		if t.Name == ref {
			return t.Name
		}
	}
	return ref
}
