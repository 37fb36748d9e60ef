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

// Cost is the common quadruple every estimator in this package returns.
// Startup is the cost paid before the first output row appears; Total is
// Startup plus the cost of producing every row; Rows is the estimated
// output cardinality; Width is the estimated bytes per output row.
//
// Costs are unit-less numbers meant for relative comparison between
// candidate plans, not wall-clock predictions.
type Cost struct {
	Startup float64
	Total   float64
	Rows    float64
	Width   float64
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func floorRows(n float64) float64 {
	r := float64(int64(n))
	if n < 0 {
		// selectivity and row counts are never negative in practice; guard
		// against surprising callers rather than returning a negative row
		// estimate.
		return 0
	}
	return r
}
