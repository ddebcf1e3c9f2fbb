// Package web holds the embedded browser UI: the measurement form template
// and its static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/* static/*
var embedFS embed.FS

// Templates parses every page template from the embedded tree.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(embedFS, "templates/*.html"))
}

// Static returns the embedded static asset tree rooted at its own directory,
// ready to mount under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(embedFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
