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
)

func TestToSQLSimple(t *testing.T) {
	q := New().Select("id", "name").FromTable("customers").Where("country", "=", "USA").Build()
	assert.Equal(t, "SELECT id, name\nFROM customers\nWHERE country = 'USA'", q.ToSQL())
}

func TestToSQLJoinAndOrderAndLimit(t *testing.T) {
	q := New().
		FromTable("customers", "c").
		Join("orders", "o", "c.id", "o.customer_id").
		Where("o.status", "=", "shipped").
		OrderBy("o.total", true).
		Limit(10).
		Build()

	expected := "SELECT *\n" +
		"FROM customers AS c\n" +
		"JOIN orders AS o ON c.id = o.customer_id\n" +
		"WHERE o.status = 'shipped'\n" +
		"ORDER BY o.total DESC\n" +
		"LIMIT 10"
	assert.Equal(t, expected, q.ToSQL())
}

func TestToSQLEmptyQuery(t *testing.T) {
	q := New().Build()
	assert.Equal(t, "SELECT *", q.ToSQL())
}

func TestPredicateStringIsNull(t *testing.T) {
	p := Predicate{TableRef: "orders", Column: "total", Operator: "IS NULL"}
	assert.Equal(t, "orders.total IS NULL", PredicateString(p))
}

func TestPredicateStringInList(t *testing.T) {
	p := Predicate{Column: "status", Operator: "IN", Value: []string{"new", "shipped"}}
	assert.Equal(t, "status IN ('new', 'shipped')", PredicateString(p))
}
