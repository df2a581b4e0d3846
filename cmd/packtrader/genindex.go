// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"packtrader/internal/discovery"

	"github.com/spf13/cobra"
)

var (
	genIndexPackageRoot string

	generateIndexCmd = &cobra.Command{
		Use:   "generate-index [dir...]",
		Short: "Write a binary plugin index",
		Long: `Scan package roots and write a ` + discovery.IndexFileName + ` file into each.

The index replaces descriptor scanning on later lookups. Regenerate it
whenever packages are installed or removed; a stale index wins over the
descriptors on disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := args
			if genIndexPackageRoot != "" {
				roots = append(roots, genIndexPackageRoot)
			}
			if len(roots) == 0 {
				return &ExitError{
					Code: ExitUsage,
					Err:  fmt.Errorf("no package root given; pass a directory or --packageroot"),
				}
			}
			return runGenerateIndex(roots)
		},
	}
)

func init() {
	generateIndexCmd.Flags().StringVarP(&genIndexPackageRoot, "packageroot", "p", "", "package root to index")
}

func runGenerateIndex(roots []string) error {
	var failed bool
	for _, root := range roots {
		if err := discovery.WriteIndex(root); err != nil {
			failed = true
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
			continue
		}
		fmt.Println(SuccessStyle.Render("Indexed ") + filepath.Join(root, discovery.IndexFileName))
	}
	if failed {
		return &ExitError{Code: ExitNotFound, Err: fmt.Errorf("some roots could not be indexed")}
	}
	return nil
}
