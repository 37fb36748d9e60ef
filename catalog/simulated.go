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
	_ "embed"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
)

//go:embed testdata/simulated_schema.toml
var simulatedSchemaTOML []byte

// tomlSchema is the on-disk shape of a catalog fixture: an ordered
// list of tables, each carrying its columns, indexes and per-column
// statistics. This is how a schema provider (spec.md §6) hands a
// demo/benchmark catalog to the optimizer without hard-coding it in
// Go.
type tomlSchema struct {
	Tables []tomlTable `toml:"tables"`
}

type tomlTable struct {
	Name       string                     `toml:"name"`
	RowCount   int64                      `toml:"row_count"`
	AvgRowSize int64                      `toml:"avg_row_size"`
	TotalPages int64                      `toml:"total_pages"`
	Columns    []tomlColumn               `toml:"columns"`
	Indexes    []tomlIndex                `toml:"indexes"`
	Stats      map[string]tomlColumnStats `toml:"stats"`
}

type tomlColumn struct {
	Name       string `toml:"name"`
	Type       string `toml:"type"`
	Nullable   bool   `toml:"nullable"`
	PrimaryKey bool   `toml:"primary_key"`
}

type tomlIndex struct {
	Name        string   `toml:"name"`
	Columns     []string `toml:"columns"`
	Unique      bool     `toml:"unique"`
	Primary     bool     `toml:"primary"`
	Cardinality int64    `toml:"cardinality"`
	Pages       int64    `toml:"pages"`
}

type tomlColumnStats struct {
	DistinctCount int64     `toml:"distinct_count"`
	NullFraction  float64   `toml:"null_fraction"`
	Min           *float64  `toml:"min"`
	Max           *float64  `toml:"max"`
	MostCommon    []string  `toml:"most_common_values"`
	MostCommonFr  []float64 `toml:"most_common_freqs"`
}

var dataTypeByName = map[string]DataType{
	"INTEGER":   INTEGER,
	"VARCHAR":   VARCHAR,
	"DECIMAL":   DECIMAL,
	"TIMESTAMP": TIMESTAMP,
	"TEXT":      TEXT,
	"SERIAL":    SERIAL,
}

func decodeSchema(data []byte) (*Schema, error) {
	var ts tomlSchema
	if _, err := toml.Decode(string(data), &ts); err != nil {
		return nil, errors.Trace(err)
	}

	schema := NewSchema()
	for _, tt := range ts.Tables {
		table := &Table{
			Name:       tt.Name,
			RowCount:   tt.RowCount,
			AvgRowSize: tt.AvgRowSize,
			TotalPages: tt.TotalPages,
		}
		for _, tc := range tt.Columns {
			table.Columns = append(table.Columns, Column{
				Name:         tc.Name,
				DataType:     dataTypeByName[tc.Type],
				Nullable:     tc.Nullable,
				IsPrimaryKey: tc.PrimaryKey,
			})
		}

		stats := NewTableStats(tt.Name)
		for _, ti := range tt.Indexes {
			stats.Indexes = append(stats.Indexes, &Index{
				Name:        ti.Name,
				TableName:   tt.Name,
				Columns:     ti.Columns,
				IsUnique:    ti.Unique,
				IsPrimary:   ti.Primary,
				Cardinality: ti.Cardinality,
				Pages:       ti.Pages,
			})
		}
		for col, cs := range tt.Stats {
			mcv := make([]interface{}, len(cs.MostCommon))
			for i, v := range cs.MostCommon {
				mcv[i] = v
			}
			stats.Columns[col] = &ColumnStats{
				DistinctCount:    cs.DistinctCount,
				NullFraction:     cs.NullFraction,
				MinValue:         cs.Min,
				MaxValue:         cs.Max,
				MostCommonValues: mcv,
				MostCommonFreqs:  cs.MostCommonFr,
			}
		}

		schema.AddTable(table, stats)
	}
	return schema, nil
}

// LoadSimulatedSchema decodes a TOML catalog fixture from path. It is a
// collaborator-facing entry point (spec.md §1's "demo used for
// benchmarking"), not part of the CORE: failures are reported, not
// swallowed.
func LoadSimulatedSchema(path string) (*Schema, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "loading simulated schema from %q", path)
	}
	schema, err := decodeSchema(data)
	if err != nil {
		return nil, errors.Annotatef(err, "decoding simulated schema from %q", path)
	}
	return schema, nil
}

// DefaultSimulatedSchema returns the built-in catalog fixture
// referenced throughout spec.md §8: categories, customers, products,
// orders and order_items at the row counts and index shapes its
// end-to-end scenarios assume.
func DefaultSimulatedSchema() (*Schema, error) {
	schema, err := decodeSchema(simulatedSchemaTOML)
	if err != nil {
		return nil, errors.Annotate(err, "decoding built-in simulated schema")
	}
	return schema, nil
}
