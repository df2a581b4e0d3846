// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"path/filepath"

	"packtrader/internal/discovery"
	"packtrader/pkg/metadata"
)

// ListPackages enumerates installed packages of the given format. When root
// is empty it is derived from the format's structure (its default package
// root), falling back to the format identifier itself as a root-relative
// subdirectory. A relative root is joined against every discovery root in
// order, with no early stop; an absolute root is listed directly. The result
// is materialized eagerly and never contains invalid records.
func (l *Loader) ListPackages(format, root string) []metadata.Metadata {
	actualRoot := root
	if actualRoot == "" {
		if s := l.LoadPackageStructure(format); s != nil {
			actualRoot = s.DefaultPackageRoot()
		}
	}
	if actualRoot == "" {
		actualRoot = format
	}

	if filepath.IsAbs(actualRoot) {
		return discovery.List(actualRoot, format)
	}

	var records []metadata.Metadata
	for _, dataDir := range l.cfg.DiscoveryRoots() {
		records = append(records, discovery.List(filepath.Join(dataDir, actualRoot), format)...)
	}
	return records
}
