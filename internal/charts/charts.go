package charts

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/DeafMist/nlp-console/internal/models"
)

// Renderer draws bar charts as self-contained HTML documents, suitable for
// an iframe srcdoc.
type Renderer struct {
	width  string
	height string
}

// New returns a Renderer with the given canvas size (CSS units).
func New(width, height string) *Renderer {
	return &Renderer{width: width, height: height}
}

// Keywords charts the keyword frequency table.
func (r *Renderer) Keywords(keywords []models.Keyword) (string, error) {
	labels := make([]string, 0, len(keywords))
	values := make([]opts.BarData, 0, len(keywords))
	for _, k := range keywords {
		labels = append(labels, k.Word)
		values = append(values, opts.BarData{Name: k.Word, Value: k.Count})
	}
	return r.bar("Word Frequency", "count", labels, values, 90)
}

// PartsOfSpeech charts the coarse part-of-speech distribution.
func (r *Renderer) PartsOfSpeech(counts []models.Count) (string, error) {
	labels := make([]string, 0, len(counts))
	values := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		labels = append(labels, c.Label)
		values = append(values, opts.BarData{Name: c.Label, Value: c.Count})
	}
	return r.bar("Part of Speech", "tokens", labels, values, 45)
}

func (r *Renderer) bar(title, series string, labels []string, values []opts.BarData, rotate float64) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     r.width,
			Height:    r.height,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{Rotate: rotate, Interval: "0"},
		}),
	)
	bar.SetXAxis(labels).AddSeries(series, values)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", fmt.Errorf("render %s chart: %w", title, err)
	}
	return buf.String(), nil
}
