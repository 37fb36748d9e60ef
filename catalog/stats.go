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
	"strings"

	"github.com/pingcap-incubator/queryopt/internal/logutil"
	"go.uber.org/zap"
)

// ColumnStats holds the per-column statistics the optimizer's
// selectivity estimation reads from.
type ColumnStats struct {
	DistinctCount    int64
	NullFraction     float64
	MinValue         *float64
	MaxValue         *float64
	MostCommonValues []interface{}
	MostCommonFreqs  []float64
}

// TableStats holds per-table statistics: column stats and the indexes
// defined on the table.
type TableStats struct {
	Table   string
	Columns map[string]*ColumnStats
	Indexes []*Index
}

// NewTableStats returns an empty TableStats ready to be populated.
func NewTableStats(table string) *TableStats {
	return &TableStats{
		Table:   table,
		Columns: make(map[string]*ColumnStats),
	}
}

// unknownSelectivity is the fallback used whenever the column, the
// operator, or the statistics needed to compute a real estimate are
// missing.
const unknownSelectivity = 0.1

// Selectivity estimates the fraction of rows a single predicate
// (column operator value) retains. It never panics and always returns
// a value in [0, 1]; missing statistics degrade to fixed defaults
// rather than failing.
func (ts *TableStats) Selectivity(column, operator string, value interface{}) float64 {
	cs, ok := ts.Columns[column]
	if !ok {
		logutil.Logger().Debug("no column statistics, using default selectivity",
			zap.String("table", ts.Table), zap.String("column", column))
		return unknownSelectivity
	}

	switch operator {
	case "=":
		if cs.DistinctCount > 0 {
			return 1.0 / float64(cs.DistinctCount)
		}
		return 0.01
	case "<", "<=":
		if v, ok := toFloat64(value); ok && cs.MinValue != nil && cs.MaxValue != nil && *cs.MaxValue > *cs.MinValue {
			return clamp01((v - *cs.MinValue) / (*cs.MaxValue - *cs.MinValue))
		}
		return 0.33
	case ">", ">=":
		if v, ok := toFloat64(value); ok && cs.MinValue != nil && cs.MaxValue != nil && *cs.MaxValue > *cs.MinValue {
			return clamp01((*cs.MaxValue - v) / (*cs.MaxValue - *cs.MinValue))
		}
		return 0.33
	case "LIKE":
		if pattern, ok := value.(string); ok && len(pattern) > 0 && !strings.HasPrefix(pattern, "%") {
			return 0.1
		}
		return 0.5
	case "IN":
		n := collectionLen(value)
		if n > 0 && cs.DistinctCount > 0 {
			sel := float64(n) / float64(cs.DistinctCount)
			if sel > 1 {
				sel = 1
			}
			return sel
		}
		return unknownSelectivity
	case "IS NULL":
		return cs.NullFraction
	case "IS NOT NULL":
		return 1 - cs.NullFraction
	default:
		logutil.Logger().Debug("unrecognized operator, using default selectivity",
			zap.String("table", ts.Table), zap.String("operator", operator))
		return unknownSelectivity
	}
}

// BestIndex walks every index on the table left-to-right against the
// parallel (columns, operators) predicate list and returns the index
// whose walk accumulates the highest positive score; ties go to
// whichever index was declared first. A column match at position i
// scores +2 for "=" or "IN", +1 for a range operator ("<", "<=", ">",
// ">=") and the walk stops there; any other mismatch stops the walk
// without scoring. Returns (nil, false) when no index scores above
// zero.
func (ts *TableStats) BestIndex(columns, operators []string) (*Index, bool) {
	var best *Index
	bestScore := 0
	for _, idx := range ts.Indexes {
		score := scoreIndex(idx, columns, operators)
		if score > bestScore {
			bestScore = score
			best = idx
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

func scoreIndex(idx *Index, columns, operators []string) int {
	score := 0
	for _, ic := range idx.Columns {
		matched := false
		for j, pc := range columns {
			if pc != ic {
				continue
			}
			matched = true
			op := operators[j]
			switch op {
			case "=", "IN":
				score += 2
			case "<", "<=", ">", ">=":
				score++
				return score
			default:
				return score
			}
			break
		}
		if !matched {
			return score
		}
	}
	return score
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func collectionLen(v interface{}) int {
	switch s := v.(type) {
	case []interface{}:
		return len(s)
	case []string:
		return len(s)
	case []int:
		return len(s)
	case []int64:
		return len(s)
	case []float64:
		return len(s)
	default:
		return 0
	}
}
