// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"packtrader/internal/discovery"
	"packtrader/internal/issue"
	"packtrader/pkg/structure"

	"github.com/spf13/cobra"
)

var (
	listType        string
	listPackageRoot string
	listDetails     bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List installed packages",
		Long: `List installed packages of a given format.

Without --packageroot the packages are looked up under every discovery
root, in the subdirectory the format's structure declares (falling back
to the format identifier itself).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(listType, listPackageRoot, listDetails)
		},
	}
)

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", structure.GenericFormat, "package format to list")
	listCmd.Flags().StringVarP(&listPackageRoot, "packageroot", "p", "", "package root to list instead of the discovery roots")
	listCmd.Flags().BoolVar(&listDetails, "details", false, "show name and description for each package")
}

func runList(format, root string, details bool) error {
	records := loader.ListPackages(format, root)
	if len(records) == 0 {
		if id, ok := diagnoseEmptyListing(format, root); ok {
			renderIssue(id)
		}
		fmt.Println(SubtitleStyle.Render("No packages found for format ") + IdStyle.Render(format))
		return nil
	}

	fmt.Println(TitleStyle.Render("Installed packages") + SubtitleStyle.Render(" ("+format+")"))
	for _, md := range records {
		if !details {
			fmt.Println(md.PluginID())
			continue
		}
		line := IdStyle.Render(md.PluginID()) + "  " + md.Name()
		if d := md.Description(); d != "" {
			line += SubtitleStyle.Render("  " + d)
		}
		fmt.Println(line)
	}
	return nil
}

// diagnoseEmptyListing picks the catalog entry that explains why a listing
// came back empty: the format's structure never resolved, its module exists
// but would not load, or the derived package root is absent. An empty
// listing of an existing root is not an error and gets no issue.
func diagnoseEmptyListing(format, root string) (issue.Id, bool) {
	if format != structure.GenericFormat && loader.LoadPackageStructure(format) == nil {
		if _, found := discovery.FindPlugin(appConfig.StructureModuleDirs(), format); found {
			return issue.ModuleLoadFailedId, true
		}
		return issue.FormatUnresolvedId, true
	}
	if !packageRootExists(format, root) {
		return issue.PackageRootMissingId, true
	}
	return 0, false
}

// packageRootExists mirrors the root derivation of the listing itself: the
// explicit root if given, else the structure's default root, else the format
// identifier. A relative root counts as existing if it does under any
// discovery root.
func packageRootExists(format, root string) bool {
	if root == "" {
		if s := loader.LoadPackageStructure(format); s != nil {
			root = s.DefaultPackageRoot()
		}
	}
	if root == "" {
		root = format
	}

	if filepath.IsAbs(root) {
		return dirExists(root)
	}
	for _, dataDir := range appConfig.DiscoveryRoots() {
		if dirExists(filepath.Join(dataDir, root)) {
			return true
		}
	}
	return false
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
