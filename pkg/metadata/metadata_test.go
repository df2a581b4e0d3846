// SPDX-License-Identifier: MPL-2.0

package metadata

import (
	"slices"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want bool
	}{
		{
			name: "plugin id and name present",
			raw:  map[string]any{KeyPluginID: "demo", KeyName: "Demo"},
			want: true,
		},
		{
			name: "missing name",
			raw:  map[string]any{KeyPluginID: "demo"},
			want: false,
		},
		{
			name: "missing plugin id",
			raw:  map[string]any{KeyName: "Demo"},
			want: false,
		},
		{
			name: "empty map",
			raw:  map[string]any{},
			want: false,
		},
		{
			name: "non-string plugin id",
			raw:  map[string]any{KeyPluginID: 42, KeyName: "Demo"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := New(tt.raw, "plugin.so")
			if got := md.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestServiceTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want []string
	}{
		{
			name: "comma separated string",
			raw:  map[string]any{KeyServiceTypes: "a, b,c"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "semicolon separated string",
			raw:  map[string]any{KeyServiceTypes: "theme;wallpaper;"},
			want: []string{"theme", "wallpaper"},
		},
		{
			name: "string slice",
			raw:  map[string]any{KeyServiceTypesAlt: []string{"theme", " wallpaper "}},
			want: []string{"theme", "wallpaper"},
		},
		{
			name: "any slice from decoded JSON",
			raw:  map[string]any{KeyServiceTypes: []any{"theme", "icons"}},
			want: []string{"theme", "icons"},
		},
		{
			name: "no declaration",
			raw:  map[string]any{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := New(tt.raw, "")
			if got := md.ServiceTypes(); !slices.Equal(got, tt.want) {
				t.Errorf("ServiceTypes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasServiceType(t *testing.T) {
	md := New(map[string]any{KeyServiceTypes: "theme,wallpaper"}, "")

	if !md.HasServiceType("theme") {
		t.Error("HasServiceType(theme) = false, want true")
	}
	if md.HasServiceType("icons") {
		t.Error("HasServiceType(icons) = true, want false")
	}
}

func TestAccessors(t *testing.T) {
	md := New(map[string]any{
		KeyPluginID:    "org.example.demo",
		KeyName:        "Demo",
		KeyDescription: "A demo plugin",
		KeyCategory:    "examples",
	}, "/lib/demo.so")

	if got := md.PluginID(); got != "org.example.demo" {
		t.Errorf("PluginID() = %q", got)
	}
	if got := md.Name(); got != "Demo" {
		t.Errorf("Name() = %q", got)
	}
	if got := md.Description(); got != "A demo plugin" {
		t.Errorf("Description() = %q", got)
	}
	if got := md.Category(); got != "examples" {
		t.Errorf("Category() = %q", got)
	}
	if got := md.FileName(); got != "/lib/demo.so" {
		t.Errorf("FileName() = %q", got)
	}
	if got := md.Value("missing"); got != "" {
		t.Errorf("Value(missing) = %q, want empty", got)
	}
}

func TestRawIsACopy(t *testing.T) {
	md := New(map[string]any{KeyPluginID: "demo", KeyName: "Demo"}, "")

	raw := md.Raw()
	raw[KeyPluginID] = "tampered"

	if got := md.PluginID(); got != "demo" {
		t.Errorf("PluginID() = %q after mutating Raw() copy, want demo", got)
	}
}
