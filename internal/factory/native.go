// SPDX-License-Identifier: MPL-2.0

package factory

import (
	"fmt"
	"plugin"

	"packtrader/pkg/metadata"
	"packtrader/pkg/structure"
)

// NativeSymbolName is the exported symbol a structure plugin must provide.
const NativeSymbolName = "NewPackageStructure"

// NativeConstructor is the required signature of the exported symbol. The
// map carries the plugin's raw metadata.
type NativeConstructor = func(raw map[string]any) (structure.PackageStructure, error)

// NativeLoader opens Go plugin shared objects. Platform support follows the
// standard library's plugin package.
type NativeLoader struct{}

// NewNativeLoader returns a loader backed by the Go plugin runtime.
func NewNativeLoader() *NativeLoader {
	return &NativeLoader{}
}

// LoadModule implements ModuleLoader.
func (l *NativeLoader) LoadModule(path string) (Factory, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plugin: %w", err)
	}

	sym, err := p.Lookup(NativeSymbolName)
	if err != nil {
		return nil, fmt.Errorf("plugin %s does not export %s: %w", path, NativeSymbolName, err)
	}

	ctor, ok := sym.(NativeConstructor)
	if !ok {
		return nil, fmt.Errorf("plugin %s: symbol %s has type %T, want %T",
			path, NativeSymbolName, sym, NativeConstructor(nil))
	}

	return FactoryFunc(func(md metadata.Metadata) (structure.PackageStructure, error) {
		return ctor(md.Raw())
	}), nil
}
