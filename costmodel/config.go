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

// Package costmodel estimates the cost of individual physical operators.
//
// Every estimator returns a Cost quadruple (startup, total, rows, width)
// that composes under nesting: the total cost of a parent operator is
// always derived from the total cost of its children plus its own
// incremental work, never recomputed from scratch.
package costmodel

// Config groups the cost-model constants. It is immutable once built and
// is passed explicitly to every Model; the optimizer never reads these
// values directly, only through the Model it was handed.
type Config struct {
	SeqPageCost     float64
	RandomPageCost  float64
	CPUTupleCost    float64
	CPUIndexCost    float64
	CPUOperatorCost float64
	PageSize        int64
}

// DefaultConfig returns the cost model's fixed constants. Callers must
// not depend on the exact numeric values, only on their relative
// magnitudes (random reads cost more than sequential ones, CPU work is
// cheap compared to I/O, and so on).
func DefaultConfig() Config {
	return Config{
		SeqPageCost:     1.0,
		RandomPageCost:  4.0,
		CPUTupleCost:    0.01,
		CPUIndexCost:    0.005,
		CPUOperatorCost: 0.0025,
		PageSize:        8192,
	}
}
