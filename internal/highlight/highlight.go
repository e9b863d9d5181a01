package highlight

import (
	"html"
	"html/template"
	"sort"
	"strings"

	"github.com/DeafMist/nlp-console/internal/models"
)

const defaultColor = "#ddd"

var colors = map[string]string{
	"ORG":          "#7aecec",
	"ORGANIZATION": "#7aecec",
	"PRODUCT":      "#bfeeb7",
	"GPE":          "#feca74",
	"LOC":          "#ff9561",
	"LOCATION":     "#ff9561",
	"PERSON":       "#aa9cfc",
	"NORP":         "#c887fb",
	"FAC":          "#9cc9cc",
	"EVENT":        "#ffeb80",
	"DATE":         "#bfe1d9",
	"TIME":         "#bfe1d9",
	"MONEY":        "#e4e7d2",
	"PERCENT":      "#e4e7d2",
	"QUANTITY":     "#e4e7d2",
	"CARDINAL":     "#e4e7d2",
	"ORDINAL":      "#e4e7d2",
	"WORK_OF_ART":  "#f0d0ff",
	"LAW":          "#ff8197",
	"LANGUAGE":     "#ff8197",
}

// Color returns the background colour used for an entity label.
func Color(label string) string {
	if c, ok := colors[strings.ToUpper(label)]; ok {
		return c
	}
	return defaultColor
}

// Render returns text as escaped HTML with every located entity wrapped in
// a labelled <mark>. Overlapping or unlocated entities are skipped.
func Render(text string, entities []models.Entity) template.HTML {
	spans := make([]models.Entity, 0, len(entities))
	for _, e := range entities {
		if e.Located() && e.End <= len(text) {
			spans = append(spans, e)
		}
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })

	var b strings.Builder
	b.WriteString(`<div class="entities">`)
	cursor := 0
	for _, e := range spans {
		if e.Start < cursor {
			continue
		}
		writeText(&b, text[cursor:e.Start])
		b.WriteString(`<mark class="entity" style="background: `)
		b.WriteString(Color(e.Label))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(text[e.Start:e.End]))
		b.WriteString(`<span class="entity-label">`)
		b.WriteString(html.EscapeString(e.Label))
		b.WriteString(`</span></mark>`)
		cursor = e.End
	}
	writeText(&b, text[cursor:])
	b.WriteString(`</div>`)

	return template.HTML(b.String())
}

// writeText escapes s and keeps paragraph breaks visible.
func writeText(b *strings.Builder, s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i > 0 {
			b.WriteString("<br>")
		}
		b.WriteString(html.EscapeString(line))
	}
}
