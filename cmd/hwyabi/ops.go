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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/simdabi/hwy/dispatch"
)

func newOpsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List registered operations and their bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			ops := dispatch.Default.Operations()
			if !verbose {
				tw := newTable(cmd.OutOrStdout(), "operation", "arity", "result", "options", "bindings")
				for _, op := range ops {
					cats := lo.Map(op.Categories(), func(c dispatch.Category, _ int) string { return c.String() })
					row(tw, op.Name(), op.Arity(), op.Rule(), strings.Join(cats, ","), len(dispatch.Default.Bindings(op)))
				}
				return tw.Flush()
			}
			tw := newTable(cmd.OutOrStdout(), "operation", "abi", "options", "args", "requires", "name")
			for _, op := range ops {
				for _, b := range dispatch.Default.Bindings(op) {
					row(tw, op.Name(), b.ABI, b.Pattern, b.Args,
						lo.Ternary(b.Requires == 0, "-", b.Requires.String()), b.Name)
				}
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "list every binding")
	return cmd
}
