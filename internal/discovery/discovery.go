// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"

	"packtrader/pkg/metadata"
)

// List enumerates the plugin records under one discovery root, preferring
// the precomputed index over a filesystem scan. Index order is preserved
// when an index is used. Records failing validity checks never appear in the
// result. The format filter only applies to the scan tier: an index is
// already specific to the root it describes.
func List(root, format string) []metadata.Metadata {
	records, err := ReadIndex(root)
	if err == nil {
		var out []metadata.Metadata
		for _, md := range records {
			if md.IsValid() {
				out = append(out, md)
			}
		}
		return out
	}
	if !errors.Is(err, ErrNoIndex) {
		// A present but unreadable index hides the root entirely rather
		// than silently diverging from its precomputed contents.
		return nil
	}

	return ScanRoot(root, format)
}

// FindPlugin resolves format to a plugin record by checking each directory
// in order. Matching is exact string equality on the plugin identifier; the
// first match wins and stops the search. Identity is the only criterion:
// a record that would be dropped from listings can still resolve.
func FindPlugin(dirs []string, format string) (metadata.Metadata, bool) {
	for _, dir := range dirs {
		if md, ok := findInDir(dir, format); ok {
			return md, true
		}
	}
	return metadata.Metadata{}, false
}

func findInDir(dir, format string) (metadata.Metadata, bool) {
	records, err := ReadIndex(dir)
	if err == nil {
		for _, md := range records {
			if md.PluginID() == format {
				return md, true
			}
		}
		return metadata.Metadata{}, false
	}
	if !errors.Is(err, ErrNoIndex) {
		return metadata.Metadata{}, false
	}

	var found metadata.Metadata
	var ok bool
	walkDescriptors(dir, func(md metadata.Metadata) bool {
		if md.PluginID() == format {
			found, ok = md, true
			return true
		}
		return false
	})
	return found, ok
}
