// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"packtrader/internal/discovery"
	"packtrader/pkg/structure"

	"github.com/spf13/cobra"
)

var listTypesCmd = &cobra.Command{
	Use:   "list-types",
	Short: "List known package formats",
	Long: `List the package formats this installation can load: the built-in
generic format plus every structure module found on the plugin search
path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListTypes()
	},
}

func runListTypes() error {
	fmt.Println(TitleStyle.Render("Known package formats"))
	fmt.Println(IdStyle.Render(structure.GenericFormat) + SubtitleStyle.Render("  (built-in)"))

	seen := map[string]bool{structure.GenericFormat: true}
	for _, dir := range appConfig.StructureModuleDirs() {
		for _, md := range discovery.List(dir, "") {
			id := md.PluginID()
			if seen[id] {
				continue
			}
			seen[id] = true
			line := IdStyle.Render(id)
			if name := md.Name(); name != "" && name != id {
				line += "  " + name
			}
			fmt.Println(line)
		}
	}
	return nil
}
