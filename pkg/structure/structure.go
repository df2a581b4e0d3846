// SPDX-License-Identifier: MPL-2.0

package structure

// GenericFormat is the well-known sentinel format identifier. Requesting it
// always yields the built-in generic structure without touching discovery.
const GenericFormat = "packtrader/generic"

// PackageStructure is the strategy object for one package format. It defines
// installation layout and validation rules; it does not read or write package
// contents itself.
type PackageStructure interface {
	// DefaultPackageRoot returns the directory, relative to a data dir,
	// under which packages of this format are installed.
	DefaultPackageRoot() string

	// RequiredFiles lists root-relative paths a package must contain to be
	// considered complete. An empty list means any layout is acceptable.
	RequiredFiles() []string

	// Matches reports whether the directory at path plausibly holds a
	// package of this format. It is a cheap layout check, not a full
	// content validation.
	Matches(path string) bool
}
