// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"packtrader/internal/config"
	"packtrader/internal/factory"
	"packtrader/pkg/structure"

	"github.com/charmbracelet/log"
)

// PackageProvider is the host override hook consulted by LoadPackage before
// the standard resolution path. Returning an invalid Package falls through
// to standard resolution.
type PackageProvider func(format string) structure.Package

// Loader resolves package formats to structures and lists installed
// packages. The zero value is not usable; construct with New.
type Loader struct {
	// structures is the per-format cache. A nil entry records a failed
	// resolution but does not prevent a retry: failures are not memoized.
	structures map[string]structure.PackageStructure

	// isDefault marks the unmodified built-in implementation: a Loader
	// without a host PackageProvider.
	isDefault bool

	modules    factory.ModuleLoader
	cfg        *config.Config
	logger     *log.Logger
	categories map[string]struct{}
	provide    PackageProvider
}

// Option configures a Loader.
type Option func(*Loader)

// WithModuleLoader injects the module-loading capability. The default is
// the native Go plugin loader.
func WithModuleLoader(ml factory.ModuleLoader) Option {
	return func(l *Loader) { l.modules = ml }
}

// WithConfig injects an already-loaded configuration, bypassing the config
// file lookup.
func WithConfig(cfg *config.Config) Option {
	return func(l *Loader) { l.cfg = cfg }
}

// WithLogger injects the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithPackageProvider installs a host override hook, marking the Loader as
// non-default.
func WithPackageProvider(p PackageProvider) Option {
	return func(l *Loader) { l.provide = p }
}

// New constructs a Loader. Without options it loads the platform config
// (falling back to defaults if that fails) and resolves structure modules
// through the native plugin loader.
func New(opts ...Option) *Loader {
	l := &Loader{
		structures: make(map[string]structure.PackageStructure),
		categories: make(map[string]struct{}),
		logger:     log.Default(),
		modules:    factory.NewNativeLoader(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			l.logger.Warn("failed to load configuration, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}
		l.cfg = cfg
	}

	for _, category := range l.cfg.ExtraCategories {
		l.RegisterCustomCategory(category)
	}

	l.isDefault = l.provide == nil
	return l
}

// global is the process-wide Loader, if any. Guarded by the single-threaded
// contract: install happens-before any resolution call.
var global *Loader

// SetLoader installs l as the process-wide Loader. Effective only if no
// Loader (override or default) exists yet: the first registration wins and
// later calls are no-ops.
func SetLoader(l *Loader) {
	if global == nil {
		global = l
	}
}

// Self returns the process-wide Loader, lazily constructing the built-in
// default on first use. Constructing here rather than erroring keeps plugins
// from injecting their own loader when the host never installed one.
func Self() *Loader {
	if global == nil {
		global = New()
	}
	return global
}
