package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

type templateData struct {
	// Name is the validated project name, usable in module paths.
	Name string
	// Package is the name with dashes stripped, usable as a Go package
	// identifier.
	Package string
}

// renderTemplate expands one embedded template with the project name.
func renderTemplate(path, name string) ([]byte, error) {
	raw, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	tmpl, err := template.New(path).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}

	data := templateData{
		Name:    name,
		Package: strings.ReplaceAll(name, "-", ""),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
