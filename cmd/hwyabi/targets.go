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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/simdabi/hwy"
)

func newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List compilation targets and whether this CPU supports them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			family, _ := cmd.Flags().GetString("family")
			targets := lo.Filter(hwy.Targets(), func(t hwy.Target, _ int) bool {
				return family == "" || t.ABI.Info().Family.String() == family
			})
			if len(targets) == 0 {
				return fmt.Errorf("no targets in family %q", family)
			}
			def := hwy.DefaultTarget()
			tw := newTable(cmd.OutOrStdout(), "target", "family", "bits", "host", "default")
			for _, t := range targets {
				info := t.ABI.Info()
				row(tw, t, title.String(info.Family.String()), info.Bits,
					lo.Ternary(hwy.HostSupports(t), "yes", "no"),
					lo.Ternary(t == def, "*", ""))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringP("family", "f", "", "only list targets of this family (arm, x86, none)")
	return cmd
}
