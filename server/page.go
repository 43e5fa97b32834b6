package server

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"

	"github.com/gomarkdown/markdown"

	"github.com/filipedpsilva/counter/errs"
	"github.com/filipedpsilva/counter/widget"
)

//go:embed assets
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/page.gohtml"))

// staticFiles is what /static/ serves.
func staticFiles() fs.FS {
	sub, err := fs.Sub(assets, "assets/static")
	if err != nil {
		panic(err)
	}
	return sub
}

// renderAbout converts the embedded about blurb from Markdown once.
func renderAbout() (template.HTML, error) {
	md, err := assets.ReadFile("assets/about.md")
	if err != nil {
		return "", errs.NewInternalError("read about.md").Wrap(err)
	}
	return template.HTML(markdown.ToHTML(md, nil, nil)), nil
}

type pageView struct {
	ID    string
	State widget.State
	Error string
	About template.HTML
}

func renderPage(view pageView) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page.gohtml", view); err != nil {
		return nil, errs.NewInternalError("render page").Wrap(err)
	}
	return buf.Bytes(), nil
}
