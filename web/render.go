// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/your-pick/views"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages lists every page template; each is parsed together with layout.html
var Pages = []string{"landing", "programs", "topics", "vote", "result", "message"}

// Page is what the layout renders around a page body
type Page struct {
	Title string
	// Back is the URL of the back link; empty hides it
	Back string
	CSRF template.HTML
	Data any
}

// Message is the body of message.html
type Message struct {
	Text   string
	Reload string // URL to retry, empty when retrying cannot help
}

type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

// NewRenderer parses all page templates up front so a broken template fails startup
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}, now: time.Now}

	funcs := template.FuncMap{
		"percent":  views.FormatPercent,
		"count":    views.FormatCount,
		"relative": func(ts string) string { return views.FormatRelative(ts, r.now()) },
	}

	for _, name := range Pages {
		tpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		r.pages[name] = tpl
	}

	return r, nil
}

// Render writes page using the named template. Output is buffered so a
// template error never leaves a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tpl, ok := r.pages[name]
	if !ok {
		slog.Error("unknown template", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, page); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Debug("failed to write response", "template", name, "error", err)
	}
}

// Static serves the embedded stylesheet and images under /static/
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServerFS(sub))
}
