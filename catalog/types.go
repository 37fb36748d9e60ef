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

// Package catalog holds the schema and statistics model the optimizer
// plans against: tables, columns, indexes and per-column statistics,
// plus the selectivity and best-index primitives the cost model and
// optimizer build on.
package catalog

// DataType enumerates the column types the catalog can describe. The
// optimizer never branches on DataType; it is purely descriptive.
type DataType int

const (
	INTEGER DataType = iota
	VARCHAR
	DECIMAL
	TIMESTAMP
	TEXT
	SERIAL
)

func (t DataType) String() string {
	switch t {
	case INTEGER:
		return "INTEGER"
	case VARCHAR:
		return "VARCHAR"
	case DECIMAL:
		return "DECIMAL"
	case TIMESTAMP:
		return "TIMESTAMP"
	case TEXT:
		return "TEXT"
	case SERIAL:
		return "SERIAL"
	default:
		return "UNKNOWN"
	}
}

// Column describes a single table column.
type Column struct {
	Name         string
	DataType     DataType
	Nullable     bool
	IsPrimaryKey bool
}

// Table describes a base relation's physical shape.
//
// Invariants: RowCount >= 0, TotalPages >= 0, AvgRowSize > 0. A table
// with TotalPages == 0 is treated by the cost model as occupying at
// least one page (see Pages()).
type Table struct {
	Name       string
	Columns    []Column
	RowCount   int64
	AvgRowSize int64
	TotalPages int64
}

// Pages returns the table's page count, clamped to at least one page:
// the cost model must never divide by, or scan, zero pages.
func (t *Table) Pages() int64 {
	if t.TotalPages <= 0 {
		return 1
	}
	return t.TotalPages
}

// Index describes a B-tree-like index over an ordered prefix of a
// table's columns.
type Index struct {
	Name        string
	TableName   string
	Columns     []string
	IsUnique    bool
	IsPrimary   bool
	Cardinality int64
	Pages       int64
}

// IsComposite reports whether the index spans more than one column.
func (idx *Index) IsComposite() bool {
	return len(idx.Columns) > 1
}

// CoversColumns reports whether cs is a prefix of the index's column
// list. This is a prefix match, not a set-containment test: an index
// on (a, b) covers []{"a"} and []{"a","b"} but not []{"b"} or
// []{"a","c"}.
func (idx *Index) CoversColumns(cs []string) bool {
	if len(cs) > len(idx.Columns) {
		return false
	}
	for i, c := range cs {
		if idx.Columns[i] != c {
			return false
		}
	}
	return true
}
