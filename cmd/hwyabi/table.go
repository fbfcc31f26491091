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

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table ABI",
		Short: "Print the register table of an ABI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			abi, err := hwy.ParseABI(args[0])
			if err != nil {
				return err
			}
			table := hwy.TableFor(abi)
			if table == nil {
				return errNoTable(abi)
			}
			tw := newTable(cmd.OutOrStdout(), "element", "lanes", "requires", "register")
			for _, e := range table.Entries() {
				row(tw, e.Elem, e.Bound, lo.Ternary(e.Requires == 0, "-", e.Requires.String()), e.Register)
			}
			return tw.Flush()
		},
	}
}

func errNoTable(abi hwy.ABI) error {
	return fmt.Errorf("%s has no register table", abi)
}
