// Package components holds the shared page pieces.
package components

import "github.com/a-h/templ"

// Markup injects HTML produced by the render package. No other input may
// be passed here.
func Markup(sanitized string) templ.Component {
	return templ.Raw(sanitized)
}
