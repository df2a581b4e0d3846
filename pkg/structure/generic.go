// SPDX-License-Identifier: MPL-2.0

package structure

import "os"

// Generic is the built-in structure behind GenericFormat. It accepts any
// directory layout and installs under a common "packages" root.
type Generic struct{}

// NewGeneric returns the built-in generic structure.
func NewGeneric() *Generic {
	return &Generic{}
}

// DefaultPackageRoot implements PackageStructure.
func (g *Generic) DefaultPackageRoot() string {
	return "packages"
}

// RequiredFiles implements PackageStructure. The generic format imposes no
// layout requirements.
func (g *Generic) RequiredFiles() []string {
	return nil
}

// Matches implements PackageStructure. Any existing directory matches.
func (g *Generic) Matches(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
