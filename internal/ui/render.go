// Package ui renders the dashboard's presentation components to HTML
// fragments. Components are plain functions from data to markup; all view
// state (loading, errors, selections) arrives as arguments, nothing here
// holds state of its own.
package ui

import (
	"bytes"
	"html/template"
)

// renderTemplate executes a pre-parsed template into an HTML fragment.
// Templates are package constants executed over known types, so a failure
// is a programming error.
func renderTemplate(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic("ui: template " + t.Name() + ": " + err.Error())
	}
	return template.HTML(buf.String())
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}
