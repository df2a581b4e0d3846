// SPDX-License-Identifier: MPL-2.0

package main

import (
	"io"
	"path/filepath"
	"testing"

	"packtrader/internal/config"
	"packtrader/internal/discovery"
	"packtrader/internal/factory"
	"packtrader/internal/issue"
	"packtrader/internal/registry"
	"packtrader/internal/testutil"
	"packtrader/pkg/metadata"
	"packtrader/pkg/structure"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// setTestRegistry swaps the process-wide loader and config for one test.
func setTestRegistry(t *testing.T, cfg *config.Config, ml factory.ModuleLoader) {
	t.Helper()
	prevLoader, prevConfig := loader, appConfig
	t.Cleanup(func() { loader, appConfig = prevLoader, prevConfig })

	appConfig = cfg
	loader = registry.New(
		registry.WithConfig(cfg),
		registry.WithLogger(log.New(io.Discard)),
		registry.WithModuleLoader(ml),
	)
}

func TestDiagnoseEmptyListing(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		restore := config.OverrideDataDirs([]string{})
		defer restore()
		setTestRegistry(t, &config.Config{}, factory.NewStaticLoader())

		id, ok := diagnoseEmptyListing("foo.bar", "")
		if !ok || id != issue.FormatUnresolvedId {
			t.Errorf("diagnoseEmptyListing(foo.bar) = (%v, %v), want FormatUnresolvedId", id, ok)
		}
	})

	t.Run("module present but unloadable", func(t *testing.T) {
		restore := config.OverrideDataDirs([]string{})
		defer restore()

		structDir := t.TempDir()
		entries := []map[string]any{
			{metadata.KeyFileName: "a.so", metadata.KeyPluginID: "demo"},
		}
		data, err := msgpack.Marshal(entries)
		if err != nil {
			t.Fatalf("failed to encode index: %v", err)
		}
		testutil.MustWriteFile(t, filepath.Join(structDir, discovery.IndexFileName), data, 0o644)

		// The static loader knows no modules, so a.so resolves but fails to load.
		setTestRegistry(t, &config.Config{StructureDirs: []string{structDir}}, factory.NewStaticLoader())

		id, ok := diagnoseEmptyListing("demo", "")
		if !ok || id != issue.ModuleLoadFailedId {
			t.Errorf("diagnoseEmptyListing(demo) = (%v, %v), want ModuleLoadFailedId", id, ok)
		}
	})

	t.Run("missing package root", func(t *testing.T) {
		dataDir := t.TempDir()
		restore := config.OverrideDataDirs([]string{dataDir})
		defer restore()
		setTestRegistry(t, &config.Config{}, factory.NewStaticLoader())

		// Generic resolves, but no "packages" dir exists under any root.
		id, ok := diagnoseEmptyListing(structure.GenericFormat, "")
		if !ok || id != issue.PackageRootMissingId {
			t.Errorf("diagnoseEmptyListing(generic) = (%v, %v), want PackageRootMissingId", id, ok)
		}
	})

	t.Run("existing empty root is not an error", func(t *testing.T) {
		dataDir := t.TempDir()
		restore := config.OverrideDataDirs([]string{dataDir})
		defer restore()
		setTestRegistry(t, &config.Config{}, factory.NewStaticLoader())

		testutil.MustMkdirAll(t, filepath.Join(dataDir, "packages"), 0o755)

		if id, ok := diagnoseEmptyListing(structure.GenericFormat, ""); ok {
			t.Errorf("diagnoseEmptyListing(generic) = (%v, true) for an existing empty root, want no issue", id)
		}
	})
}
