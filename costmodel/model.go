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

package costmodel

import (
	"math"

	"github.com/pingcap-incubator/queryopt/catalog"
)

// DefaultJoinSelectivity is the fraction of the Cartesian product a
// hash or nested-loop join is assumed to retain when the caller has no
// better estimate from equi-join column statistics.
const DefaultJoinSelectivity = 0.1

// DefaultWorkMemKB is the amount of working memory, in kilobytes, Sort
// assumes is available before it has to spill to a multi-pass
// external sort.
const DefaultWorkMemKB = 4096.0

// Model computes operator costs against a fixed Config. The optimizer
// holds one Model per planning session and never reads Config
// directly.
type Model struct {
	cfg Config
}

// New returns a Model using cfg.
func New(cfg Config) *Model {
	return &Model{cfg: cfg}
}

// SeqScan estimates the cost of reading every page of table and
// applying selectivity to its row count.
func (m *Model) SeqScan(table *catalog.Table, selectivity float64) Cost {
	ioCost := float64(table.Pages()) * m.cfg.SeqPageCost
	cpuCost := float64(table.RowCount) * m.cfg.CPUTupleCost
	return Cost{
		Startup: 0,
		Total:   ioCost + cpuCost,
		Rows:    floorRows(float64(table.RowCount) * selectivity),
		Width:   float64(table.AvgRowSize),
	}
}

// indexHeight estimates the number of B-tree levels an index scan must
// descend before reaching a leaf page.
func indexHeight(cardinality int64) float64 {
	if cardinality <= 0 {
		return 3
	}
	h := math.Floor(2 + math.Pow(float64(cardinality), 0.25))
	if h < 1 {
		return 1
	}
	return h
}

// IndexScan estimates the cost of an index lookup followed by a heap
// fetch for every matching row.
func (m *Model) IndexScan(table *catalog.Table, index *catalog.Index, selectivity float64) Cost {
	startup := indexHeight(index.Cardinality) * m.cfg.RandomPageCost
	output := maxFloat(1, floorRows(float64(table.RowCount)*selectivity))
	perTuple := m.cfg.RandomPageCost + m.cfg.CPUIndexCost
	heapCost := output * m.cfg.RandomPageCost * 0.5
	return Cost{
		Startup: startup,
		Total:   startup + output*perTuple + heapCost,
		Rows:    output,
		Width:   float64(table.AvgRowSize),
	}
}

// IndexOnlyScan estimates the cost of an index scan that never visits
// the heap because the index itself covers every referenced column.
func (m *Model) IndexOnlyScan(table *catalog.Table, index *catalog.Index, selectivity float64) Cost {
	startup := indexHeight(index.Cardinality) * m.cfg.RandomPageCost
	output := maxFloat(1, floorRows(float64(table.RowCount)*selectivity))
	indexPages := index.Pages
	if indexPages < 1 {
		indexPages = 1
	}
	io := minFloat(output, float64(indexPages)) * m.cfg.SeqPageCost
	perTuple := m.cfg.CPUIndexCost
	return Cost{
		Startup: startup,
		Total:   startup + output*perTuple + io,
		Rows:    output,
		Width:   50,
	}
}

// NestedLoopJoin estimates the cost of rescanning inner once per outer
// row. innerRescanCost defaults to inner.Total*0.9 (subsequent
// rescans are assumed cheaper than the first, e.g. warm caches) when
// nil.
func (m *Model) NestedLoopJoin(outer, inner Cost, innerRescanCost *float64) Cost {
	rescan := inner.Total * 0.9
	if innerRescanCost != nil {
		rescan = *innerRescanCost
	}
	extraScans := maxFloat(0, outer.Rows-1)
	total := outer.Total + inner.Total + extraScans*rescan + outer.Rows*inner.Rows*m.cfg.CPUOperatorCost
	return Cost{
		Startup: outer.Startup + inner.Startup,
		Total:   total,
		Rows:    maxFloat(1, floorRows(outer.Rows*inner.Rows*0.1)),
		Width:   outer.Width + inner.Width,
	}
}

// HashJoin estimates the cost of building a hash table over inner and
// probing it once per outer row.
func (m *Model) HashJoin(outer, inner Cost, joinSelectivity float64) Cost {
	startup := outer.Startup + inner.Total
	buildCost := inner.Rows * m.cfg.CPUTupleCost * 5
	probeCost := outer.Total + outer.Rows*m.cfg.CPUTupleCost*2
	return Cost{
		Startup: startup,
		Total:   startup + buildCost + probeCost,
		Rows:    maxFloat(1, floorRows(outer.Rows*inner.Rows*joinSelectivity)),
		Width:   outer.Width + inner.Width,
	}
}

// Sort estimates the cost of sorting input, blocking until every row
// has been consumed (Startup == Total). Inputs that fit within
// workMemKB sort in memory; larger inputs are costed as a multi-pass
// external sort over 8KB pages.
func (m *Model) Sort(input Cost, workMemKB float64) Cost {
	dataKB := input.Rows * input.Width / 1024
	var sortCost float64
	if dataKB <= workMemKB {
		sortCost = input.Rows * math.Log2(maxFloat(2, input.Rows)) * m.cfg.CPUOperatorCost * 2
	} else {
		passes := maxFloat(1, math.Ceil(math.Log2(dataKB/workMemKB)))
		pagesUnit := dataKB / (float64(m.cfg.PageSize) / 1024)
		sortCost = passes * pagesUnit * m.cfg.SeqPageCost * 2
	}
	total := input.Total + sortCost
	return Cost{
		Startup: total,
		Total:   total,
		Rows:    input.Rows,
		Width:   input.Width,
	}
}

// Filter estimates the cost of evaluating a residual predicate over
// every input row.
func (m *Model) Filter(input Cost, selectivity float64) Cost {
	return Cost{
		Startup: input.Startup,
		Total:   input.Total + input.Rows*m.cfg.CPUOperatorCost,
		Rows:    maxFloat(1, floorRows(input.Rows*selectivity)),
		Width:   input.Width,
	}
}

// Limit estimates the cost of stopping after n rows. When input
// already produces n or fewer rows, Limit is a no-op on cost.
func (m *Model) Limit(input Cost, n float64) Cost {
	if input.Rows <= n {
		return input
	}
	fraction := n / input.Rows
	return Cost{
		Startup: input.Startup,
		Total:   input.Startup + (input.Total-input.Startup)*fraction,
		Rows:    n,
		Width:   input.Width,
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
