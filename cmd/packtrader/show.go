// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"packtrader/internal/issue"
	"packtrader/pkg/metadata"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <package-dir>",
	Short: "Show a package's metadata",
	Long: `Show the metadata of an installed package.

The argument is a package directory (or a descriptor file directly);
the descriptor is metadata.desktop or metadata.json inside it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(args[0])
	},
}

func runShow(path string) error {
	descriptor, err := findDescriptor(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
		return &ExitError{Code: ExitNotFound, Err: err}
	}

	md, err := metadata.FromDescriptorFile(descriptor)
	if err != nil {
		renderIssue(issue.InvalidMetadataId)
		return &ExitError{Code: ExitNotFound, Err: err}
	}

	label := func(s string) string { return TitleStyle.Render(s + ":") }
	fmt.Println(label("Plugin ID"), IdStyle.Render(md.PluginID()))
	fmt.Println(label("Name"), md.Name())
	if d := md.Description(); d != "" {
		fmt.Println(label("Description"), d)
	}
	if c := md.Category(); c != "" {
		fmt.Println(label("Category"), c)
	}
	if types := md.ServiceTypes(); len(types) > 0 {
		fmt.Println(label("Service types"), strings.Join(types, ", "))
	}
	fmt.Println(label("Descriptor"), SubtitleStyle.Render(md.FileName()))
	if md.IsValid() {
		fmt.Println(label("Valid"), SuccessStyle.Render("yes"))
	} else {
		fmt.Println(label("Valid"), ErrorStyle.Render("no"))
	}
	return nil
}

// findDescriptor resolves a package dir or descriptor path to the descriptor
// file. Desktop-entry descriptors are preferred over JSON ones, matching
// discovery order.
func findDescriptor(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("no such package: %s", path)
	}
	if !info.IsDir() {
		if !metadata.IsDescriptorName(filepath.Base(path)) {
			return "", fmt.Errorf("%s is not a package descriptor", path)
		}
		return path, nil
	}
	for _, name := range []string{metadata.DesktopFileName, metadata.JSONFileName} {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no descriptor found in %s", path)
}
