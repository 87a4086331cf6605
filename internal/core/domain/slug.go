package domain

import (
	"strconv"

	"github.com/gosimple/slug"
)

// SlugBase normalizes a display name into its URL-safe base slug.
func SlugBase(name string) string {
	return slug.Make(name)
}

// NextSlug returns a unique slug for name. existing must contain every slug
// already assigned that starts with the base slug of name. The base is used
// as-is when free; otherwise the smallest unused positive numeric suffix is
// appended, so suffixes never collide and never repeat.
func NextSlug(name string, existing []string) string {
	base := SlugBase(name)

	taken := make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	if _, ok := taken[base]; !ok {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// SlugMatches reports whether s is the base slug of name or a suffixed
// variant of it, meaning a rename to name can keep s.
func SlugMatches(s, name string) bool {
	base := SlugBase(name)
	if s == base {
		return true
	}
	if len(s) <= len(base)+1 || s[:len(base)+1] != base+"-" {
		return false
	}
	_, err := strconv.Atoi(s[len(base)+1:])
	return err == nil
}
