package email

import (
	"embed"
	"text/template"
)

//go:embed templates/*.txt
var templateFS embed.FS

func loadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.txt")
}
