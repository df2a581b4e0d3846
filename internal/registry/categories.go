// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// builtinCategories is the fixed category vocabulary. Labels are stored
// lower-cased; the list is for validation and display only and has no effect
// on loading.
var builtinCategories = []string{
	"accessibility",
	"application launchers",
	"astronomy",
	"date and time",
	"development tools",
	"education",
	"environment and weather",
	"examples",
	"file system",
	"fun and games",
	"graphics",
	"language",
	"mapping",
	"miscellaneous",
	"multimedia",
	"online services",
	"productivity",
	"system information",
	"utilities",
	"windows and tasks",
}

// RegisterCustomCategory adds a host-defined label to the category
// vocabulary. Labels are normalized to lower case; registering an existing
// label is a no-op.
func (l *Loader) RegisterCustomCategory(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	l.categories[name] = struct{}{}
}

// KnownCategories returns the sorted union of the built-in vocabulary and
// all host-registered labels.
func (l *Loader) KnownCategories() []string {
	all := make(map[string]struct{}, len(builtinCategories)+len(l.categories))
	for _, c := range builtinCategories {
		all[c] = struct{}{}
	}
	for c := range l.categories {
		all[c] = struct{}{}
	}

	out := maps.Keys(all)
	slices.Sort(out)
	return out
}
