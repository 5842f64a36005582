package models

import "strings"

// Filter narrows a partition listing. Zero fields match everything.
type Filter struct {
	// Name must be a substring of the object name.
	Name string

	// URL must be a substring of the object url.
	URL string

	// HasKeys must all be present in the object metadata.
	HasKeys []string
}

// Matches reports whether data satisfies every set field of f.
func (f Filter) Matches(data LocationData) bool {
	if f.Name != "" && !strings.Contains(data.Name, f.Name) {
		return false
	}
	if f.URL != "" && !strings.Contains(data.URL, f.URL) {
		return false
	}
	for _, k := range f.HasKeys {
		if _, ok := data.Metadata[k]; !ok {
			return false
		}
	}
	return true
}
