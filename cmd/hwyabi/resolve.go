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
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/simdabi/hwy"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve ELEM LANES",
		Short: "Resolve the register for a vector shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			elem, err := hwy.ParseElementType(args[0])
			if err != nil {
				return err
			}
			lanes, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("lanes: %w", err)
			}
			logical, _ := cmd.Flags().GetBool("logical")
			all, _ := cmd.Flags().GetBool("all")

			targets := hwy.Targets()
			if !all {
				t, err := targetFlag(cmd)
				if err != nil {
					return err
				}
				targets = []hwy.Target{t}
			}
			resolve := hwy.Resolve
			if logical {
				resolve = hwy.ResolveLogical
			}
			tw := newTable(cmd.OutOrStdout(), "target", "shape", "register", "capacity")
			for _, t := range targets {
				kind := resolve(elem, lanes, t)
				shape := fmt.Sprintf("%sx%d", elem, lanes)
				if logical {
					shape = "logical<" + shape + ">"
				}
				row(tw, t, shape, kind, lo.Ternary(kind.IsNative(), strconv.Itoa(kind.Capacity()), "-"))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringP("target", "t", "", "target to resolve on (default: the build target)")
	cmd.Flags().BoolP("logical", "l", false, "resolve the mask register guarding the shape")
	cmd.Flags().BoolP("all", "a", false, "resolve on every target")
	return cmd
}
