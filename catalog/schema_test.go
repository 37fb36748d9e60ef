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
	"github.com/stretchr/testify/require"
)

func TestSchemaAddAndLookup(t *testing.T) {
	s := NewSchema()
	s.AddTable(&Table{Name: "customers", RowCount: 10000, AvgRowSize: 120}, nil)

	assert.True(t, s.HasTable("customers"))
	assert.Equal(t, int64(10000), s.Table("customers").RowCount)
	assert.NotNil(t, s.Stats("customers"))
}

func TestSchemaUnknownTableFallsBack(t *testing.T) {
	s := NewSchema()
	tbl := s.Table("ghost")
	assert.Equal(t, int64(unknownTableRowCount), tbl.RowCount)
	assert.False(t, s.HasTable("ghost"))
}

func TestSchemaUnknownStatsAreEmptyNotNil(t *testing.T) {
	s := NewSchema()
	stats := s.Stats("ghost")
	require.NotNil(t, stats)
	assert.Empty(t, stats.Columns)
	assert.Empty(t, stats.Indexes)
}

func TestSchemaAddTableWithoutStatsCreatesEmptyOnes(t *testing.T) {
	s := NewSchema()
	s.AddTable(&Table{Name: "t"}, nil)
	stats := s.Stats("t")
	require.NotNil(t, stats)
	assert.Equal(t, "t", stats.Table)
}

func TestDefaultSimulatedSchemaHasExpectedTables(t *testing.T) {
	schema, err := DefaultSimulatedSchema()
	require.NoError(t, err)

	for _, name := range []string{"categories", "customers", "products", "orders", "order_items"} {
		assert.True(t, schema.HasTable(name), "expected table %q in the built-in simulated schema", name)
	}

	customers := schema.Table("customers")
	assert.Equal(t, int64(10000), customers.RowCount)

	stats := schema.Stats("customers")
	require.Contains(t, stats.Columns, "country")
	assert.Equal(t, int64(10), stats.Columns["country"].DistinctCount)

	idx, ok := stats.BestIndex([]string{"id"}, []string{"="})
	require.True(t, ok)
	assert.Equal(t, "idx_customers_id", idx.Name)
}
