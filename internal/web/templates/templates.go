// Package templates embeds the HTML views so the binary is self-contained
// and handler tests can render without a working directory dependency.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Parse returns the parsed template set for gin's HTML renderer.
func Parse() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.html"))
}
