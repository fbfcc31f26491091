// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/simdabi/hwy"
	"github.com/go-highway/simdabi/hwy/contrib/workerpool"
)

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check the register tables for monotonicity, mask consistency and determinism",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lanes, _ := cmd.Flags().GetInt("lanes")
			workers, _ := cmd.Flags().GetInt("workers")
			if lanes < 1 || lanes > hwy.MaxAuditLanes {
				return fmt.Errorf("lanes must be in 1..%d", hwy.MaxAuditLanes)
			}
			out := cmd.OutOrStdout()

			findings := hwy.Audit()
			for _, f := range findings {
				fmt.Fprintln(out, f)
			}
			counts := lo.CountValuesBy(findings, func(f hwy.Finding) hwy.FindingKind { return f.Kind })

			pool := workerpool.New(workers)
			defer pool.Close()
			queries := hwy.Queries(lanes)
			if err := hwy.VerifyDeterminism(pool, queries); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d queries deterministic on %d workers; %d narrowing, %d logical findings\n",
				len(queries), pool.NumWorkers(), counts[hwy.NarrowingEmulated], counts[hwy.LogicalMismatch])
			if len(findings) > 0 {
				return fmt.Errorf("%d audit findings", len(findings))
			}
			return nil
		},
	}
	cmd.Flags().IntP("lanes", "n", hwy.MaxAuditLanes, "largest lane count to check for determinism")
	cmd.Flags().IntP("workers", "w", runtime.GOMAXPROCS(0), "worker goroutines")
	return cmd
}
