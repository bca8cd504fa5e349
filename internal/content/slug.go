package content

import (
	"regexp"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every run of characters outside [a-z0-9]
// into one hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// uniqueID slugifies title and appends -1, -2, ... until the result is not
// in taken. An empty slug becomes "project".
func uniqueID(title string, taken map[string]bool) string {
	base := Slugify(title)
	if base == "" {
		base = "project"
	}
	id := base
	for n := 1; taken[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	return id
}
