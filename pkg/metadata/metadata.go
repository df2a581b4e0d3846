// SPDX-License-Identifier: MPL-2.0

package metadata

import (
	"slices"
	"strings"
)

// Well-known metadata keys. Descriptor files and index entries both use this
// vocabulary; the X-KDE-* spellings are kept for compatibility with existing
// plugin descriptors in the wild.
const (
	// KeyName is the human-readable plugin name.
	KeyName = "Name"
	// KeyDescription is the human-readable plugin description.
	KeyDescription = "Comment"
	// KeyPluginID identifies the plugin; it doubles as the package format
	// identifier during structure resolution.
	KeyPluginID = "X-KDE-PluginInfo-Name"
	// KeyCategory is the plugin's category label.
	KeyCategory = "X-KDE-PluginInfo-Category"
	// KeyServiceTypes lists the service types the plugin satisfies.
	KeyServiceTypes = "X-KDE-ServiceTypes"
	// KeyServiceTypesAlt is the unprefixed spelling of KeyServiceTypes.
	KeyServiceTypesAlt = "ServiceTypes"
	// KeyLibrary names the module that backs the plugin, relative to the
	// descriptor's directory.
	KeyLibrary = "X-KDE-Library"
	// KeyFileName carries the backing file path inside index entries.
	KeyFileName = "FileName"
)

// Metadata is an immutable description of one discoverable plugin.
type Metadata struct {
	fileName     string
	serviceTypes []string
	raw          map[string]any
}

// New builds a record from a raw key/value map and the path of the file that
// backs the plugin. The raw map is not copied; callers hand over ownership.
func New(raw map[string]any, fileName string) Metadata {
	if raw == nil {
		raw = map[string]any{}
	}
	return Metadata{
		fileName:     fileName,
		serviceTypes: serviceTypesFromRaw(raw),
		raw:          raw,
	}
}

// PluginID returns the plugin identifier, or "" if the record does not
// declare one.
func (m Metadata) PluginID() string {
	return m.stringValue(KeyPluginID)
}

// Name returns the human-readable plugin name.
func (m Metadata) Name() string {
	return m.stringValue(KeyName)
}

// Description returns the human-readable plugin description.
func (m Metadata) Description() string {
	return m.stringValue(KeyDescription)
}

// Category returns the plugin's category label.
func (m Metadata) Category() string {
	return m.stringValue(KeyCategory)
}

// FileName returns the path of the module or descriptor backing the plugin.
func (m Metadata) FileName() string {
	return m.fileName
}

// ServiceTypes returns the service types the plugin declares.
func (m Metadata) ServiceTypes() []string {
	return slices.Clone(m.serviceTypes)
}

// HasServiceType reports whether the plugin declares the given service type.
func (m Metadata) HasServiceType(serviceType string) bool {
	return slices.Contains(m.serviceTypes, serviceType)
}

// Value returns the raw string value stored under key, or "" when the key is
// absent or not a string.
func (m Metadata) Value(key string) string {
	return m.stringValue(key)
}

// Raw returns a copy of the underlying key/value map. Index generation uses
// it to round-trip records back to disk.
func (m Metadata) Raw() map[string]any {
	out := make(map[string]any, len(m.raw))
	for k, v := range m.raw {
		out[k] = v
	}
	return out
}

// IsValid reports whether the record carries the required identity fields.
// Invalid records are never surfaced by listing operations.
func (m Metadata) IsValid() bool {
	return m.PluginID() != "" && m.Name() != ""
}

func (m Metadata) stringValue(key string) string {
	if v, ok := m.raw[key].(string); ok {
		return v
	}
	return ""
}

// serviceTypesFromRaw normalizes the two accepted service-type spellings and
// the two accepted shapes: a separator-delimited string (desktop descriptors)
// or a list of strings (JSON descriptors and index entries).
func serviceTypesFromRaw(raw map[string]any) []string {
	var out []string
	for _, key := range []string{KeyServiceTypes, KeyServiceTypesAlt} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			out = append(out, splitList(val)...)
		case []string:
			for _, s := range val {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		case []any:
			for _, item := range val {
				if s, ok := item.(string); ok {
					if s = strings.TrimSpace(s); s != "" {
						out = append(out, s)
					}
				}
			}
		}
	}
	return out
}

// splitList splits a desktop-entry list value. Both commas and semicolons are
// accepted as separators.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
