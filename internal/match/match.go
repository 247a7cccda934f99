// Package match decides which autotype descriptors apply to a window title.
package match

import (
	"sort"
	"strings"

	"github.com/mj1618/pass-autotype/internal/model"
)

// Matches reports whether any of the descriptor's patterns is a
// case-sensitive substring of title.
func Matches(desc *model.Descriptor, title string) bool {
	for _, p := range desc.Patterns {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}

// Filter sets Matched on every descriptor and returns the matched ones
// sorted by credential path. Each descriptor is evaluated independently.
func Filter(descriptors map[string]*model.Descriptor, title string) []*model.Descriptor {
	paths := make([]string, 0, len(descriptors))
	for path := range descriptors {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var matched []*model.Descriptor
	for _, path := range paths {
		desc := descriptors[path]
		desc.Matched = len(desc.Patterns) > 0 && Matches(desc, title)
		if desc.Matched {
			matched = append(matched, desc)
		}
	}
	return matched
}
