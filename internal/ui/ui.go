// Package ui holds the page and panel registry of the console and renders
// them with html/template.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/DeafMist/nlp-console/internal/analysis"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is an entry of the sidebar menu.
type Page struct {
	Slug        string
	Title       string
	Heading     string
	Path        string
	Implemented bool
}

// Pages is the fixed sidebar menu, in display order.
var Pages = []Page{
	{Slug: "home", Title: "Home", Heading: "Home: Analyze Text", Path: "/", Implemented: true},
	{Slug: "files", Title: "NLP(files)", Heading: "NLP Task", Path: "/files"},
	{Slug: "about", Title: "About", Heading: "About", Path: "/about", Implemented: true},
}

// PageBySlug looks a menu entry up.
func PageBySlug(slug string) (Page, bool) {
	for _, p := range Pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return Page{}, false
}

// Section places a panel on the results grid.
type Section string

const (
	SectionTop    Section = "top"
	SectionLeft   Section = "left"
	SectionRight  Section = "right"
	SectionBottom Section = "bottom"
)

// Panel is one collapsible result block. Panels that are not implemented
// render a placeholder instead of a body.
type Panel struct {
	Key         string
	Title       string
	Info        string
	Section     Section
	Implemented bool
}

// Panels lists every result panel of the home page.
var Panels = []Panel{
	{Key: "original", Title: "Original Text", Section: SectionTop, Implemented: true},
	{Key: "tokens", Title: "Text Analysis", Section: SectionTop, Implemented: true},
	{Key: "entities", Title: "Entities", Section: SectionTop, Implemented: true},
	{Key: "stats", Title: "Word Stats", Info: "Word Statistics", Section: SectionLeft, Implemented: true},
	{Key: "keywords", Title: "Top Keywords", Info: "Top Keywords/Tokens", Section: SectionLeft, Implemented: true},
	{Key: "sentiment", Title: "Sentiment", Section: SectionLeft, Implemented: true},
	{Key: "plot_keywords", Title: "Plot Word Freq", Section: SectionRight, Implemented: true},
	{Key: "plot_pos", Title: "Plot Part of Speech", Section: SectionRight, Implemented: true},
	{Key: "plot_wordcloud", Title: "Plot Word Cloud", Section: SectionRight},
	{Key: "download", Title: "Download Text Analysis Results", Section: SectionBottom},
}

// View is everything a page template needs.
type View struct {
	Page       Page
	Pages      []Page
	Text       string
	Keywords   int
	KeywordMin int
	KeywordMax int
	// Analyzed is set once the user pressed "Analyze".
	Analyzed bool
	Result   *analysis.Result
}

// In returns the panels of one grid section.
func (v View) In(section Section) []Panel {
	var out []Panel
	for _, p := range Panels {
		if p.Section == section {
			out = append(out, p)
		}
	}
	return out
}

type panelView struct {
	P Panel
	V View
}

// Renderer executes the embedded templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"panel": func(p Panel, v View) panelView { return panelView{P: p, V: v} },
		"sortedKeys": func(m map[string]int) []string {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return keys
		},
		"fixed": func(f float64) string { return fmt.Sprintf("%.4f", f) },
	}

	tmpl, err := template.New("ui").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page for v.
func (r *Renderer) Render(w io.Writer, v View) error {
	if v.Pages == nil {
		v.Pages = Pages
	}
	if err := r.tmpl.ExecuteTemplate(w, "layout", v); err != nil {
		return fmt.Errorf("render %s page: %w", v.Page.Slug, err)
	}
	return nil
}
