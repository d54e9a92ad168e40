// Package renderer turns desk reports into markdown strings, ready to
// be rendered on a terminal or pasted into a document.
package renderer

import (
	"fmt"
	"strings"
	"text/template"
)

// renderTemplate is a generic utility to render a named template over
// its data. Rendering errors are returned inline in the output: a
// report should never fail to print because of a template bug.
func renderTemplate(name, content string, data any) string {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", name, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
