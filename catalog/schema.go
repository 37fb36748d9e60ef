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
	"github.com/pingcap-incubator/queryopt/internal/logutil"
	"go.uber.org/zap"
)

// unknownTableRowCount is the synthetic row count handed out for a
// table the schema has never heard of, so that any syntactically
// valid Query over any Schema still produces a plan (spec §7).
const unknownTableRowCount = 1000

// Schema maps table names to their physical description and
// statistics. It is read-only from the optimizer's perspective for
// the duration of a planning call.
type Schema struct {
	tables map[string]*Table
	stats  map[string]*TableStats
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{
		tables: make(map[string]*Table),
		stats:  make(map[string]*TableStats),
	}
}

// AddTable registers a table. If stats is nil, an empty TableStats is
// created automatically so every table always has one.
func (s *Schema) AddTable(t *Table, stats *TableStats) {
	s.tables[t.Name] = t
	if stats == nil {
		stats = NewTableStats(t.Name)
	}
	s.stats[t.Name] = stats
}

// Table returns the table registered under name, or a synthetic
// fallback table (row_count = 1000, no stats) when name is unknown.
// The fallback is invisible to callers: it looks and behaves exactly
// like a thinly-populated real table.
func (s *Schema) Table(name string) *Table {
	if t, ok := s.tables[name]; ok {
		return t
	}
	logutil.Logger().Debug("unknown table, using synthetic fallback", zap.String("table", name))
	return &Table{
		Name:       name,
		RowCount:   unknownTableRowCount,
		AvgRowSize: 64,
		TotalPages: 0,
	}
}

// Stats returns the statistics registered for name, or an empty
// TableStats when name is unknown or has no statistics of its own.
func (s *Schema) Stats(name string) *TableStats {
	if st, ok := s.stats[name]; ok {
		return st
	}
	return NewTableStats(name)
}

// HasTable reports whether name was explicitly registered (as opposed
// to falling back to the synthetic default).
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// TableNames returns the registered table names in no particular
// order; useful for demo/debug tooling, never consulted by the
// optimizer itself.
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for n := range s.tables {
		names = append(names, n)
	}
	return names
}
