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

// Command hwyabi inspects register resolution and operation dispatch.
//
// Usage:
//
//	hwyabi resolve int32 4 -t neon128
//	hwyabi table avx512
//	hwyabi targets
//	hwyabi ops -v
//	hwyabi audit
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/go-highway/simdabi/hwy"
	_ "github.com/go-highway/simdabi/hwy/contrib/bitops"
	_ "github.com/go-highway/simdabi/hwy/contrib/math"
	_ "github.com/go-highway/simdabi/hwy/contrib/predicate"
)

var rootCmd = &cobra.Command{
	Use:           "hwyabi",
	Short:         "Inspect SIMD register resolution and operation dispatch",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := hwy.TargetOverrideError(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: ignoring HWY_TARGET: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newResolveCmd(), newTableCmd(), newTargetsCmd(), newOpsCmd(), newAuditCmd())
}

var title = cases.Title(language.English)

// newTable returns a tab-aligned writer with a title-cased header row.
func newTable(w io.Writer, columns ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, c := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, title.String(c))
	}
	fmt.Fprintln(tw)
	return tw
}

func row(w io.Writer, cells ...any) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

// targetFlag parses the --target flag, defaulting to hwy.DefaultTarget.
func targetFlag(cmd *cobra.Command) (hwy.Target, error) {
	s, _ := cmd.Flags().GetString("target")
	if s == "" {
		return hwy.DefaultTarget(), nil
	}
	return hwy.ParseTarget(s)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hwyabi:", err)
		os.Exit(1)
	}
}
