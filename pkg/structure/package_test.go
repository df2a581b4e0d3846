// SPDX-License-Identifier: MPL-2.0

package structure

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPackageValidity(t *testing.T) {
	invalid := NewPackage(nil)
	if invalid.HasValidStructure() {
		t.Error("NewPackage(nil).HasValidStructure() = true, want false")
	}
	if got := invalid.DefaultPackageRoot(); got != "" {
		t.Errorf("invalid package DefaultPackageRoot() = %q, want empty", got)
	}

	valid := NewPackage(NewGeneric())
	if !valid.HasValidStructure() {
		t.Error("NewPackage(generic).HasValidStructure() = false, want true")
	}
	if valid.Structure() == nil {
		t.Error("Structure() returned nil for a valid package")
	}
}

func TestPackageSetPath(t *testing.T) {
	p := NewPackage(NewGeneric())
	if got := p.Path(); got != "" {
		t.Errorf("Path() = %q before SetPath, want empty", got)
	}

	p.SetPath("/var/lib/packages/demo")
	if got := p.Path(); got != "/var/lib/packages/demo" {
		t.Errorf("Path() = %q after SetPath", got)
	}
}

func TestPackagesShareStructure(t *testing.T) {
	s := NewGeneric()
	a := NewPackage(s)
	b := NewPackage(s)

	if a.Structure() != b.Structure() {
		t.Error("packages built from the same structure should share it")
	}
}

func TestGeneric(t *testing.T) {
	g := NewGeneric()

	if got := g.DefaultPackageRoot(); got != "packages" {
		t.Errorf("DefaultPackageRoot() = %q, want packages", got)
	}
	if got := g.RequiredFiles(); got != nil {
		t.Errorf("RequiredFiles() = %v, want nil", got)
	}

	tmpDir := t.TempDir()
	if !g.Matches(tmpDir) {
		t.Error("Matches() = false for an existing directory")
	}
	if g.Matches(filepath.Join(tmpDir, "missing")) {
		t.Error("Matches() = true for a missing path")
	}

	file := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if g.Matches(file) {
		t.Error("Matches() = true for a regular file")
	}
}
