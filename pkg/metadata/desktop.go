// SPDX-License-Identifier: MPL-2.0

package metadata

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DesktopFileName is the fixed name of desktop-entry style descriptors found
// by the filesystem scanner.
const DesktopFileName = "metadata.desktop"

// desktopMainGroup is the only group whose keys are read.
const desktopMainGroup = "[Desktop Entry]"

// FromDesktopFile parses a desktop-entry style descriptor into a record.
//
// The format is line-oriented: a "[Desktop Entry]" group header followed by
// Key=Value lines. Blank lines and '#' comments are skipped, as are keys in
// any other group. When the descriptor names a backing library via
// X-KDE-Library, the record's FileName points at that module (resolved
// relative to the descriptor's directory); otherwise it is the descriptor
// path itself.
func FromDesktopFile(path string) (Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to open descriptor: %w", err)
	}
	defer f.Close()

	// Keys only count once the "[Desktop Entry]" header has been seen;
	// lines before any group header belong to no group.
	raw := map[string]any{}
	inMainGroup := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inMainGroup = line == desktopMainGroup
			continue
		}
		if !inMainGroup {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		raw[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return Metadata{}, fmt.Errorf("failed to read descriptor %s: %w", path, err)
	}

	fileName := path
	if lib, ok := raw[KeyLibrary].(string); ok && lib != "" {
		fileName = filepath.Join(filepath.Dir(path), lib)
	}

	return New(raw, fileName), nil
}
