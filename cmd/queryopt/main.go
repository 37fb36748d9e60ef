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

// Command queryopt is a small demo harness over the optimizer: it
// plans one of a handful of canned queries against the built-in (or a
// user-supplied) simulated schema and prints either a single EXPLAIN
// rendering or a naive-vs-optimized comparison.
package main

import (
	"fmt"
	"os"

	"github.com/pingcap-incubator/queryopt/catalog"
	"github.com/pingcap-incubator/queryopt/costmodel"
	"github.com/pingcap-incubator/queryopt/optimizer"
	"github.com/pingcap-incubator/queryopt/plan"
	"github.com/pingcap-incubator/queryopt/query"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
)

var schemaPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "queryopt",
		Short: "Plan canned queries against a simulated schema",
	}
	root.PersistentFlags().StringVar(&schemaPath, "schema", "", "path to a TOML schema fixture (default: built-in simulated schema)")

	root.AddCommand(newExplainCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newListCmd())
	return root
}

func newExplainCmd() *cobra.Command {
	var naive bool
	cmd := &cobra.Command{
		Use:   "explain <query-name>",
		Short: "Print the plan for one canned query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opt, err := setup()
			if err != nil {
				return err
			}
			q, err := lookupQuery(args[0])
			if err != nil {
				return err
			}

			var ep *plan.ExecutionPlan
			if naive {
				ep = opt.BuildNaivePlan(q)
			} else {
				ep = opt.Optimize(q)
			}
			fmt.Println(ep.Format(true))
			return nil
		},
	}
	cmd.Flags().BoolVar(&naive, "naive", false, "print the naive baseline plan instead of the optimized one")
	return cmd
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <query-name>",
		Short: "Print the naive and optimized plans for one canned query side by side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, opt, err := setup()
			if err != nil {
				return err
			}
			q, err := lookupQuery(args[0])
			if err != nil {
				return err
			}

			naivePlan := opt.BuildNaivePlan(q)
			optimizedPlan := opt.Optimize(q)
			fmt.Println(plan.ComparePlans(naivePlan, optimizedPlan))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the canned query names explain/compare accept",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range cannedQueryNames() {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func setup() (*catalog.Schema, *optimizer.Optimizer, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, nil, err
	}
	opt := optimizer.New(schema, costmodel.DefaultConfig())
	return schema, opt, nil
}

func loadSchema() (*catalog.Schema, error) {
	if schemaPath == "" {
		schema, err := catalog.DefaultSimulatedSchema()
		return schema, errors.Trace(err)
	}
	schema, err := catalog.LoadSimulatedSchema(schemaPath)
	return schema, errors.Trace(err)
}

func lookupQuery(name string) (*query.Query, error) {
	q, ok := cannedQueries()[name]
	if !ok {
		return nil, errors.Errorf("unknown query %q; run 'queryopt list' to see the available names", name)
	}
	return q, nil
}
