// SPDX-License-Identifier: MPL-2.0

package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFileName is the fixed name of JSON descriptors found by the filesystem
// scanner. JSON descriptors are the newer sibling of metadata.desktop and
// use the same key vocabulary as a flat object.
const JSONFileName = "metadata.json"

// FromJSONFile parses a metadata.json descriptor into a record.
func FromJSONFile(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to read descriptor: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}

	fileName := path
	if lib, ok := raw[KeyLibrary].(string); ok && lib != "" {
		fileName = filepath.Join(filepath.Dir(path), lib)
	}

	return New(raw, fileName), nil
}

// FromIndexEntry builds a record from one decoded element of a plugin index
// array. The backing file comes from the entry's FileName key.
func FromIndexEntry(entry map[string]any) Metadata {
	fileName, _ := entry[KeyFileName].(string)
	return New(entry, fileName)
}

// IsDescriptorName reports whether name matches one of the fixed descriptor
// filename conventions.
func IsDescriptorName(name string) bool {
	return name == DesktopFileName || name == JSONFileName
}

// FromDescriptorFile dispatches on the descriptor filename convention.
func FromDescriptorFile(path string) (Metadata, error) {
	if filepath.Base(path) == JSONFileName {
		return FromJSONFile(path)
	}
	return FromDesktopFile(path)
}
