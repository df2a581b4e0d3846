// SPDX-License-Identifier: MPL-2.0

package factory

import (
	"errors"
	"fmt"

	"packtrader/pkg/metadata"
	"packtrader/pkg/structure"
)

var (
	// ErrUnknownModule is returned by a loader when no module exists for
	// the requested path.
	ErrUnknownModule = errors.New("unknown module")

	// ErrNoStructure is returned when a factory was found but refused to
	// produce a structure for the requested metadata.
	ErrNoStructure = errors.New("no structure produced")
)

// Factory constructs a package structure from a plugin's metadata. The
// metadata acts as construction configuration: a single factory may serve
// several formats by inspecting it.
type Factory interface {
	Create(md metadata.Metadata) (structure.PackageStructure, error)
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(md metadata.Metadata) (structure.PackageStructure, error)

// Create implements Factory.
func (f FactoryFunc) Create(md metadata.Metadata) (structure.PackageStructure, error) {
	return f(md)
}

// ModuleLoader is the capability of turning a plugin file path into a
// Factory. It is where a real dynamic-library loader plugs in.
type ModuleLoader interface {
	LoadModule(path string) (Factory, error)
}

// Build runs the full invocation: load the module backing md, then ask its
// factory for a structure, passing md as configuration. Every failure mode
// (module missing, factory refusing, nil structure) comes back as an error;
// the registry decides how much of that to surface.
func Build(loader ModuleLoader, md metadata.Metadata) (structure.PackageStructure, error) {
	f, err := loader.LoadModule(md.FileName())
	if err != nil {
		return nil, fmt.Errorf("failed to load module %s: %w", md.FileName(), err)
	}

	s, err := f.Create(md)
	if err != nil {
		return nil, fmt.Errorf("factory for %s failed: %w", md.FileName(), err)
	}
	if s == nil {
		return nil, fmt.Errorf("factory for %s: %w", md.FileName(), ErrNoStructure)
	}
	return s, nil
}
