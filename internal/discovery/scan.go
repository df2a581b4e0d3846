// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"io/fs"
	"os"
	"path/filepath"

	"packtrader/pkg/metadata"
)

// ScanRoot recursively walks root for descriptor files and parses each match
// into a record. Invalid records and unreadable files are skipped. When
// format is non-empty, only records declaring it as a service type are
// returned. Traversal order is WalkDir order; callers must not depend on it
// being stable across platforms.
func ScanRoot(root, format string) []metadata.Metadata {
	var records []metadata.Metadata
	walkDescriptors(root, func(md metadata.Metadata) bool {
		if !md.IsValid() {
			return false
		}
		if format != "" && !md.HasServiceType(format) {
			return false
		}
		records = append(records, md)
		return false
	})
	return records
}

// walkDescriptors walks root and invokes fn for every parseable descriptor
// file. fn returning true stops the walk early. Unreadable entries and
// unparseable descriptors are skipped silently.
func walkDescriptors(root string, fn func(md metadata.Metadata) bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return
	}
	if _, err := os.Stat(absRoot); os.IsNotExist(err) {
		return
	}

	_ = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() || !metadata.IsDescriptorName(d.Name()) {
			return nil
		}

		md, parseErr := metadata.FromDescriptorFile(path)
		if parseErr != nil {
			return nil
		}
		if fn(md) {
			return fs.SkipAll
		}
		return nil
	})
}
