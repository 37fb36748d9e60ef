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

import "strings"

// Builder constructs a Query through fluent calls. The zero value is
// not usable; start from New().
type Builder struct {
	q *Query
}

// New returns a Builder for an empty query.
func New() *Builder {
	return &Builder{q: &Query{}}
}

// Select sets the projected column expressions.
func (b *Builder) Select(columns ...string) *Builder {
	b.q.Projections = append(b.q.Projections, columns...)
	return b
}

// FromTable adds the first table reference. Join must not be called
// before FromTable.
func (b *Builder) FromTable(name string, alias ...string) *Builder {
	ref := TableReference{Name: name}
	if len(alias) > 0 {
		ref.Alias = alias[0]
	}
	b.q.Tables = append(b.q.Tables, ref)
	return b
}

// Join adds a table to the FROM list joined via an equi-join
// condition. leftCol and rightCol may be bare column names or
// "ref.column"; a bare leftCol defaults to the first declared table's
// ref, and a bare rightCol defaults to the ref of the table this call
// introduces.
func (b *Builder) Join(table, alias, leftCol, rightCol string, joinType ...JoinType) *Builder {
	ref := TableReference{Name: table, Alias: alias}
	b.q.Tables = append(b.q.Tables, ref)

	jt := InnerJoin
	if len(joinType) > 0 {
		jt = joinType[0]
	}

	firstRef := ""
	if len(b.q.Tables) > 0 {
		firstRef = b.q.Tables[0].Ref()
	}
	leftRef, leftColName := splitColumn(leftCol, firstRef)
	rightRef, rightColName := splitColumn(rightCol, ref.Ref())

	b.q.Joins = append(b.q.Joins, JoinCondition{
		LeftRef:  leftRef,
		LeftCol:  leftColName,
		RightRef: rightRef,
		RightCol: rightColName,
		JoinType: jt,
	})
	return b
}

// Where adds the first WHERE predicate (logical_op "AND").
func (b *Builder) Where(column, operator string, value interface{}) *Builder {
	return b.addPredicate(column, operator, value, "AND")
}

// AndWhere adds a predicate conjoined with AND.
func (b *Builder) AndWhere(column, operator string, value interface{}) *Builder {
	return b.addPredicate(column, operator, value, "AND")
}

// OrWhere adds a predicate whose logical_op is recorded as OR. The
// WHERE clause is not restructured around it: a table-qualified OR
// predicate is pushed down and its selectivity multiplied in exactly
// like an AND predicate.
func (b *Builder) OrWhere(column, operator string, value interface{}) *Builder {
	return b.addPredicate(column, operator, value, "OR")
}

func (b *Builder) addPredicate(column, operator string, value interface{}, logicalOp string) *Builder {
	ref, col := splitColumn(column, "")
	b.q.Predicates = append(b.q.Predicates, Predicate{
		TableRef:  ref,
		Column:    col,
		Operator:  operator,
		Value:     value,
		LogicalOp: logicalOp,
	})
	return b
}

// GroupBy sets the GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	b.q.GroupBy = append(b.q.GroupBy, columns...)
	return b
}

// OrderBy appends one ORDER BY key.
func (b *Builder) OrderBy(column string, desc bool) *Builder {
	b.q.OrderBy = append(b.q.OrderBy, OrderByItem{Column: column, Desc: desc})
	return b
}

// Limit sets the row limit.
func (b *Builder) Limit(n int64) *Builder {
	b.q.LimitValue = &n
	return b
}

// Offset sets the row offset.
func (b *Builder) Offset(n int64) *Builder {
	b.q.OffsetValue = &n
	return b
}

// Build returns the constructed Query.
func (b *Builder) Build() *Query {
	return b.q
}

// splitColumn splits "T.c" on the first dot into (ref, column). A
// column with no dot gets defaultRef as its ref (which may itself be
// empty, meaning "no table qualifier").
func splitColumn(raw, defaultRef string) (ref, column string) {
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return defaultRef, raw
}
