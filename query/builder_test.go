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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderSimpleSelect(t *testing.T) {
	q := New().Select("id", "name").FromTable("customers").Build()

	require.Len(t, q.Tables, 1)
	assert.Equal(t, "customers", q.Tables[0].Name)
	assert.Equal(t, []string{"id", "name"}, q.Projections)
}

func TestBuilderJoinDefaultsColumnRefs(t *testing.T) {
	q := New().
		FromTable("customers").
		Join("orders", "", "id", "customer_id").
		Build()

	require.Len(t, q.Joins, 1)
	j := q.Joins[0]
	assert.Equal(t, "customers", j.LeftRef)
	assert.Equal(t, "id", j.LeftCol)
	assert.Equal(t, "orders", j.RightRef)
	assert.Equal(t, "customer_id", j.RightCol)
	assert.Equal(t, InnerJoin, j.JoinType)
}

func TestBuilderJoinExplicitQualifiedRefs(t *testing.T) {
	q := New().
		FromTable("customers", "c").
		Join("orders", "o", "c.id", "o.customer_id").
		Build()

	j := q.Joins[0]
	assert.Equal(t, "c", j.LeftRef)
	assert.Equal(t, "o", j.RightRef)
}

func TestBuilderWhereAndOrWhere(t *testing.T) {
	q := New().
		FromTable("customers").
		Where("customers.country", "=", "USA").
		OrWhere("customers.country", "=", "CA").
		Build()

	require.Len(t, q.Predicates, 2)
	assert.Equal(t, "AND", q.Predicates[0].LogicalOp)
	assert.Equal(t, "OR", q.Predicates[1].LogicalOp)
	assert.Equal(t, "customers", q.Predicates[0].TableRef)
}

func TestBuilderUnqualifiedPredicateHasNoTableRef(t *testing.T) {
	q := New().FromTable("customers").Where("country", "=", "USA").Build()
	assert.Empty(t, q.Predicates[0].TableRef)
}

func TestBuilderGroupByOrderByLimitOffset(t *testing.T) {
	q := New().
		FromTable("orders").
		GroupBy("status").
		OrderBy("total", true).
		Limit(10).
		Offset(5).
		Build()

	assert.Equal(t, []string{"status"}, q.GroupBy)
	require.Len(t, q.OrderBy, 1)
	assert.True(t, q.OrderBy[0].Desc)
	require.NotNil(t, q.LimitValue)
	assert.Equal(t, int64(10), *q.LimitValue)
	require.NotNil(t, q.OffsetValue)
	assert.Equal(t, int64(5), *q.OffsetValue)
}

func TestGetTableNameResolvesAlias(t *testing.T) {
	q := New().FromTable("customers", "c").Build()
	assert.Equal(t, "customers", q.GetTableName("c"))
	assert.Equal(t, "customers", q.GetTableName("customers"))
	assert.Equal(t, "ghost", q.GetTableName("ghost"))
}
