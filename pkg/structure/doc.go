// SPDX-License-Identifier: MPL-2.0

// Package structure defines the package-structure strategy interface and the
// Package handle that pairs a structure with an on-disk root.
//
// A PackageStructure describes how installed packages of one format are laid
// out: where they live by default and which files they must carry. Exactly
// one structure instance exists per format for the lifetime of the registry
// that created it; Package values borrow that instance and may be created
// freely.
package structure
