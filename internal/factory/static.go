// SPDX-License-Identifier: MPL-2.0

package factory

import (
	"fmt"
	"path/filepath"
)

// StaticLoader resolves module paths against an in-process registry of
// statically linked factories. Lookup is by module file basename, so a
// registered name matches the same module wherever discovery found it.
type StaticLoader struct {
	factories map[string]Factory
}

// NewStaticLoader returns an empty static loader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{factories: make(map[string]Factory)}
}

// Register binds a factory to a module basename. Registering the same name
// twice panics: duplicate registrations are a programming error, not a
// runtime condition.
func (l *StaticLoader) Register(name string, f Factory) {
	if _, exists := l.factories[name]; exists {
		panic(fmt.Sprintf("factory for module '%s' already registered", name))
	}
	l.factories[name] = f
}

// LoadModule implements ModuleLoader.
func (l *StaticLoader) LoadModule(path string) (Factory, error) {
	name := filepath.Base(path)
	f, ok := l.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}
	return f, nil
}
