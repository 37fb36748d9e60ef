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

package main

import (
	"sort"

	"github.com/pingcap-incubator/queryopt/query"
)

// cannedQueries returns the demo queries this CLI can plan, keyed by
// the name explain/compare accept. They mirror the simulated schema's
// end-to-end scenarios: a single filtered scan, a two-table join whose
// effective sizes favor reordering, a five-table join led by its
// smallest filtered relation, an indexed point lookup, and the
// zero-table edge case.
func cannedQueries() map[string]*query.Query {
	return map[string]*query.Query{
		"single-table-filter": query.New().
			Select("*").
			FromTable("customers").
			Where("customers.country", "=", "USA").
			Build(),

		"two-table-reorder": query.New().
			Select("*").
			FromTable("customers").
			Join("orders", "", "customers.id", "orders.customer_id").
			Where("orders.status", "=", "shipped").
			Build(),

		"five-table-join": query.New().
			Select("*").
			FromTable("categories").
			Join("products", "", "categories.id", "products.category_id").
			Join("order_items", "", "products.id", "order_items.product_id").
			Join("orders", "", "order_items.order_id", "orders.id").
			Join("customers", "", "orders.customer_id", "customers.id").
			Where("categories.name", "=", "Electronics").
			Build(),

		"indexed-lookup": query.New().
			Select("*").
			FromTable("products").
			Where("products.category_id", "=", 5).
			OrderBy("products.price", false).
			Limit(20).
			Build(),

		"empty-query": query.New().
			Select("*").
			Build(),
	}
}

// cannedQueryNames returns the keys of cannedQueries in sorted order.
func cannedQueryNames() []string {
	qs := cannedQueries()
	names := make([]string, 0, len(qs))
	for name := range qs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
