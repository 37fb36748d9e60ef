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

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(v float64) *float64 { return &v }

func TestSelectivityEquality(t *testing.T) {
	ts := NewTableStats("customers")
	ts.Columns["country"] = &ColumnStats{DistinctCount: 10}

	assert.InDelta(t, 0.1, ts.Selectivity("country", "=", "USA"), 0.0001)
}

func TestSelectivityRange(t *testing.T) {
	ts := NewTableStats("products")
	ts.Columns["price"] = &ColumnStats{MinValue: float64Ptr(10), MaxValue: float64Ptr(2000)}

	assert.InDelta(t, (250.0-10)/(2000-10), ts.Selectivity("price", "<", 250.0), 0.0001)
	assert.InDelta(t, (2000.0-1500)/(2000-10), ts.Selectivity("price", ">", 1500.0), 0.0001)
}

func TestSelectivityInClause(t *testing.T) {
	ts := NewTableStats("orders")
	ts.Columns["status"] = &ColumnStats{DistinctCount: 80}

	sel := ts.Selectivity("status", "IN", []interface{}{"new", "shipped"})
	assert.InDelta(t, 2.0/80, sel, 0.0001)
}

func TestSelectivityIsNull(t *testing.T) {
	ts := NewTableStats("orders")
	ts.Columns["total"] = &ColumnStats{NullFraction: 0.05}

	assert.InDelta(t, 0.05, ts.Selectivity("total", "IS NULL", nil), 0.0001)
	assert.InDelta(t, 0.95, ts.Selectivity("total", "IS NOT NULL", nil), 0.0001)
}

func TestSelectivityFallsBackWhenStatsMissing(t *testing.T) {
	ts := NewTableStats("unknown")
	assert.Equal(t, unknownSelectivity, ts.Selectivity("whatever", "=", 1))
}

func TestSelectivityUnknownOperatorFallsBack(t *testing.T) {
	ts := NewTableStats("orders")
	ts.Columns["status"] = &ColumnStats{DistinctCount: 80}
	assert.Equal(t, unknownSelectivity, ts.Selectivity("status", "~", "x"))
}

func TestBestIndexPrefersLongerEqualityMatch(t *testing.T) {
	ts := NewTableStats("order_items")
	ts.Indexes = []*Index{
		{Name: "idx_order_only", Columns: []string{"order_id"}},
		{Name: "idx_order_product", Columns: []string{"order_id", "product_id"}},
	}

	best, ok := ts.BestIndex([]string{"order_id", "product_id"}, []string{"=", "="})
	assert.True(t, ok)
	assert.Equal(t, "idx_order_product", best.Name)
}

func TestBestIndexStopsAtRangeOperator(t *testing.T) {
	ts := NewTableStats("orders")
	ts.Indexes = []*Index{
		{Name: "idx_customer_total", Columns: []string{"customer_id", "total"}},
	}

	best, ok := ts.BestIndex([]string{"customer_id", "total"}, []string{"=", "<"})
	assert.True(t, ok)
	assert.Equal(t, "idx_customer_total", best.Name)
}

func TestBestIndexNoMatchReturnsFalse(t *testing.T) {
	ts := NewTableStats("orders")
	ts.Indexes = []*Index{
		{Name: "idx_customer_id", Columns: []string{"customer_id"}},
	}

	_, ok := ts.BestIndex([]string{"status"}, []string{"="})
	assert.False(t, ok)
}

func TestBestIndexTieGoesToFirstDeclared(t *testing.T) {
	ts := NewTableStats("t")
	ts.Indexes = []*Index{
		{Name: "first", Columns: []string{"a"}},
		{Name: "second", Columns: []string{"a"}},
	}

	best, ok := ts.BestIndex([]string{"a"}, []string{"="})
	assert.True(t, ok)
	assert.Equal(t, "first", best.Name)
}
