// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"packtrader/internal/discovery"
	"packtrader/internal/factory"
	"packtrader/pkg/structure"
)

// LoadPackage resolves format to a structure and returns a Package bound to
// path (or unbound when path is empty, to be set later by the caller). The
// host override hook is consulted first. An empty format or a failed
// resolution yields an invalid Package; LoadPackage never returns an error.
func (l *Loader) LoadPackage(format, path string) structure.Package {
	if !l.isDefault && l.provide != nil {
		p := l.provide(format)
		if p.HasValidStructure() {
			if path != "" {
				p.SetPath(path)
			}
			return p
		}
	}

	if format == "" {
		return structure.NewPackage(nil)
	}

	s := l.LoadPackageStructure(format)
	if s == nil {
		return structure.NewPackage(nil)
	}

	p := structure.NewPackage(s)
	if path != "" {
		p.SetPath(path)
	}
	return p
}

// LoadPackageStructure resolves format to its structure instance,
// instantiating it on first demand and returning the cached instance on
// every later call. A failed resolution is cached as nil but not memoized:
// the next call runs discovery again.
func (l *Loader) LoadPackageStructure(format string) structure.PackageStructure {
	if format == "" {
		return nil
	}
	if s, ok := l.structures[format]; ok && s != nil {
		return s
	}

	var s structure.PackageStructure
	if format == structure.GenericFormat {
		// The built-in structure needs no discovery.
		s = structure.NewGeneric()
	} else if md, ok := discovery.FindPlugin(l.cfg.StructureModuleDirs(), format); ok {
		built, err := factory.Build(l.modules, md)
		if err != nil {
			// Diagnostic channel only: the caller sees an invalid result,
			// indistinguishable from an unknown format.
			l.logger.Warn("could not load structure module",
				"format", format, "module", md.FileName(), "error", err)
		}
		s = built
	}

	l.structures[format] = s
	return s
}
