// Package pages holds the public site and dashboard pages.
package pages

import (
	"strings"

	"portfolio/views/models"
)

// joinList is the inverse of the comma separated technologies field.
func joinList(items []string) string {
	return strings.Join(items, ", ")
}

// contactLines renders contact items as "label | value | href" lines, the
// format the contact form parses.
func contactLines(items []models.ContactItemView) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = it.Label + " | " + it.Value + " | " + it.Href
	}
	return strings.Join(lines, "\n")
}

func socialLines(links []models.SocialLinkView) string {
	lines := make([]string, len(links))
	for i, l := range links {
		lines[i] = l.Name + " | " + l.Href
	}
	return strings.Join(lines, "\n")
}
