package analysis

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/DeafMist/nlp-console/internal/highlight"
	"github.com/DeafMist/nlp-console/internal/logger"
	"github.com/DeafMist/nlp-console/internal/models"
	"github.com/DeafMist/nlp-console/internal/nlp"
	"github.com/DeafMist/nlp-console/internal/processing"
)

// Parser tokenizes, tags and finds entities.
type Parser interface {
	Parse(text string) (*nlp.Document, error)
	IsStop(word string) bool
}

// Scorer computes document sentiment.
type Scorer interface {
	Score(text string) models.Sentiment
}

// ChartRenderer draws the two bar charts.
type ChartRenderer interface {
	Keywords(keywords []models.Keyword) (string, error)
	PartsOfSpeech(counts []models.Count) (string, error)
}

// Result is an Analysis plus its rendered HTML fragments.
type Result struct {
	Analysis     models.Analysis
	EntitiesHTML template.HTML
	KeywordChart string
	POSChart     string
}

// Unlocated returns the entities that could not be placed in the text and
// therefore are missing from EntitiesHTML.
func (r *Result) Unlocated() []models.Entity {
	var out []models.Entity
	for _, e := range r.Analysis.Entities {
		if !e.Located() {
			out = append(out, e)
		}
	}
	return out
}

// Service runs the fixed analysis sequence. It holds no per-request state.
type Service struct {
	parser Parser
	scorer Scorer
	charts ChartRenderer
	minLen int
	log    *slog.Logger
	now    func() time.Time
}

// New wires a Service. minLen is the minimum keyword length in runes.
func New(parser Parser, scorer Scorer, charts ChartRenderer, minLen int, log *slog.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		parser: parser,
		scorer: scorer,
		charts: charts,
		minLen: minLen,
		log:    log,
		now:    time.Now,
	}
}

// Run analyses text and keeps the top limit keywords. The first failing
// step aborts the run; nothing partial is returned.
func (s *Service) Run(ctx context.Context, text string, limit int) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := s.now()
	id := uuid.NewString()
	log := s.log.With(slog.String("analysis_id", id))
	log.Debug("analysis started", slog.Int("bytes", len(text)), slog.Int("keyword_limit", limit))

	doc, err := s.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("text analysis: %w", err)
	}

	res := &Result{
		Analysis: models.Analysis{
			ID:           id,
			Text:         doc.Text,
			KeywordLimit: limit,
			Tokens:       doc.Tokens,
			Entities:     doc.Entities,
			CreatedAt:    started.UTC(),
		},
	}
	a := &res.Analysis

	res.EntitiesHTML = highlight.Render(doc.Text, doc.Entities)

	a.Stats = processing.ComputeWordStats(doc.Text, s.parser.IsStop)
	a.Stats.Sentences = doc.Sentences

	a.Keywords = processing.RankKeywords(doc.Text, limit, s.minLen, s.parser.IsStop)

	a.Sentiment = s.scorer.Score(doc.Text)

	a.POS = processing.POSDistribution(doc.Tokens)

	if res.KeywordChart, err = s.charts.Keywords(a.Keywords); err != nil {
		return nil, fmt.Errorf("plot word freq: %w", err)
	}
	if res.POSChart, err = s.charts.PartsOfSpeech(a.POS); err != nil {
		return nil, fmt.Errorf("plot part of speech: %w", err)
	}

	a.Duration = s.now().Sub(started)
	log.Info("analysis finished",
		slog.Int("tokens", len(a.Tokens)),
		slog.Int("entities", len(a.Entities)),
		slog.Int("keywords", len(a.Keywords)),
		slog.Duration("took", a.Duration),
	)
	return res, nil
}
