// SPDX-License-Identifier: MPL-2.0

package structure

// Package pairs a borrowed PackageStructure with a concrete root path. A new
// Package is created on every load; independent Packages may share the same
// underlying structure instance.
type Package struct {
	structure PackageStructure
	path      string
}

// NewPackage wraps a structure in a fresh Package. A nil structure yields an
// invalid Package, which is how resolution failures surface to callers.
func NewPackage(s PackageStructure) Package {
	return Package{structure: s}
}

// HasValidStructure reports whether the Package is backed by a structure.
func (p Package) HasValidStructure() bool {
	return p.structure != nil
}

// Structure returns the borrowed structure instance, or nil for an invalid
// Package.
func (p Package) Structure() PackageStructure {
	return p.structure
}

// SetPath binds the Package to an on-disk root. Write-once by convention:
// set it before handing the Package to a consumer.
func (p *Package) SetPath(path string) {
	p.path = path
}

// Path returns the bound root path, or "" when unbound.
func (p Package) Path() string {
	return p.path
}

// DefaultPackageRoot returns the structure's default installation root, or
// "" for an invalid Package.
func (p Package) DefaultPackageRoot() string {
	if p.structure == nil {
		return ""
	}
	return p.structure.DefaultPackageRoot()
}
