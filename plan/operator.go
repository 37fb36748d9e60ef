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

// Package plan is the physical plan representation: a tree of typed
// operator nodes annotated with cost, row and width estimates,
// filter/join conditions and sort keys, plus the pretty-printer and
// comparator that render it in a style reminiscent of relational DBMS
// explain output.
package plan

// Operator tags the physical strategy a PlanNode implements. The
// optimizer in this module only ever produces SeqScanOp, IndexScanOp,
// IndexOnlyScanOp, NestedLoopOp, HashJoinOp, SortOp, HashOp, LimitOp
// and ResultOp; BitmapHeapScanOp, MergeJoinOp, FilterOp and
// AggregateOp are declared for extension (spec.md §4.3) but never
// produced by this pipeline — GROUP BY is parsed and rendered but not
// planned into an Aggregate node (spec.md Non-goals), and residual
// predicates live on FilterCondition fields of scan nodes rather than
// as standalone Filter nodes.
type Operator int

const (
	SeqScanOp Operator = iota
	IndexScanOp
	IndexOnlyScanOp
	BitmapHeapScanOp
	NestedLoopOp
	HashJoinOp
	MergeJoinOp
	SortOp
	FilterOp
	HashOp
	AggregateOp
	LimitOp
	ResultOp
)

func (o Operator) String() string {
	switch o {
	case SeqScanOp:
		return "Seq Scan"
	case IndexScanOp:
		return "Index Scan"
	case IndexOnlyScanOp:
		return "Index Only Scan"
	case BitmapHeapScanOp:
		return "Bitmap Heap Scan"
	case NestedLoopOp:
		return "Nested Loop"
	case HashJoinOp:
		return "Hash Join"
	case MergeJoinOp:
		return "Merge Join"
	case SortOp:
		return "Sort"
	case FilterOp:
		return "Filter"
	case HashOp:
		return "Hash"
	case AggregateOp:
		return "Aggregate"
	case LimitOp:
		return "Limit"
	case ResultOp:
		return "Result"
	default:
		return "Unknown"
	}
}
