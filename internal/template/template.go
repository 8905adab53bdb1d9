package template

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/report.html
var templates embed.FS

// add adds two integers and returns the result.
// helper function for html template
func add(a, b int) int {
	return a + b
}

// plural picks the singular or plural noun for n.
// helper function for html template
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// categoryClass returns the CSS class of a rule category.
// helper function for html template
func categoryClass(category string) string {
	return "category-" + strings.ToLower(strings.TrimSpace(category))
}

// NewReportTemplate parses the built-in HTML report template.
func NewReportTemplate() (*template.Template, error) {
	return template.New("report.html").
		Funcs(template.FuncMap{
			"add":           add,
			"plural":        plural,
			"categoryClass": categoryClass,
		}).
		ParseFS(templates, "templates/report.html")
}
