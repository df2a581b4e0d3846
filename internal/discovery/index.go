// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"packtrader/pkg/metadata"

	"github.com/vmihailenco/msgpack/v5"
)

// IndexFileName is the fixed name of the precomputed plugin index inside a
// discovery root. The file holds a MessagePack-encoded array of objects, one
// per plugin, using the same key vocabulary as descriptor files.
const IndexFileName = "plugin-index.msgpack"

// ErrNoIndex is returned by ReadIndex when the root has no index file, which
// tells callers to fall back to scanning.
var ErrNoIndex = errors.New("no plugin index")

// ReadIndex decodes the plugin index inside root. Records are returned in
// index order; entries that are not objects are skipped. No validity
// filtering happens here: resolution matches on identity alone, so filtering
// is the caller's concern.
func ReadIndex(root string) ([]metadata.Metadata, error) {
	path := filepath.Join(root, IndexFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoIndex
		}
		return nil, fmt.Errorf("failed to read plugin index %s: %w", path, err)
	}

	var entries []map[string]any
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode plugin index %s: %w", path, err)
	}

	records := make([]metadata.Metadata, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		records = append(records, metadata.FromIndexEntry(entry))
	}
	return records, nil
}

// HasIndex reports whether root carries a plugin index file.
func HasIndex(root string) bool {
	_, err := os.Stat(filepath.Join(root, IndexFileName))
	return err == nil
}

// WriteIndex scans root for descriptor files and writes the plugin index
// from the discovered records, replacing any existing index. Invalid records
// are left out, matching what a listing of the scanned root would surface.
func WriteIndex(root string) error {
	records := ScanRoot(root, "")

	entries := make([]map[string]any, 0, len(records))
	for _, md := range records {
		entry := md.Raw()
		entry[metadata.KeyFileName] = md.FileName()
		entries = append(entries, entry)
	}

	data, err := msgpack.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode plugin index: %w", err)
	}

	path := filepath.Join(root, IndexFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plugin index %s: %w", path, err)
	}
	return nil
}
