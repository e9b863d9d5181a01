package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/DeafMist/nlp-console/internal/analysis"
	"github.com/DeafMist/nlp-console/internal/config"
	"github.com/DeafMist/nlp-console/internal/ui"
)

type analyzer interface {
	Run(ctx context.Context, text string, limit int) (*analysis.Result, error)
}

type server struct {
	log      *slog.Logger
	cfg      *config.Console
	analyzer analyzer
	pages    *ui.Renderer
}

type errorResponse struct {
	Error string `json:"error"`
}

type analyzeRequest struct {
	Text     string `json:"text"`
	Keywords *int   `json:"keywords"`
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/", s.handlePage("home"))
	r.Get("/files", s.handlePage("files"))
	r.Get("/about", s.handlePage("about"))
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/api/analyze", s.handleAPIAnalyze)
	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handlePage(slug string) http.HandlerFunc {
	page, ok := ui.PageBySlug(slug)
	if !ok {
		panic("unknown page " + slug)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, s.view(page))
	}
}

func (s *server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), bodyStatus(err))
		return
	}

	page, _ := ui.PageBySlug("home")
	v := s.view(page)
	v.Text = r.PostFormValue("text")
	v.Keywords = s.cfg.Keywords.Clamp(r.PostFormValue("keywords"))

	res, err := s.analyzer.Run(r.Context(), v.Text, v.Keywords)
	if err != nil {
		s.log.Error("analyze text",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("err", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	v.Analyzed = true
	v.Result = res
	s.render(w, r, v)
}

func (s *server) handleAPIAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, bodyStatus(err), errorResponse{Error: err.Error()})
		return
	}

	limit := s.cfg.Keywords.Default
	if req.Keywords != nil {
		limit = s.cfg.Keywords.ClampInt(*req.Keywords)
	}

	res, err := s.analyzer.Run(r.Context(), req.Text, limit)
	if err != nil {
		s.log.Error("analyze text",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("err", err),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, res.Analysis)
}

func (s *server) view(page ui.Page) ui.View {
	return ui.View{
		Page:       page,
		Keywords:   s.cfg.Keywords.Default,
		KeywordMin: s.cfg.Keywords.Min,
		KeywordMax: s.cfg.Keywords.Max,
	}
}

// render buffers the page so a template error still yields a clean 500.
func (s *server) render(w http.ResponseWriter, r *http.Request, v ui.View) {
	var buf bytes.Buffer
	if err := s.pages.Render(&buf, v); err != nil {
		s.log.Error("render page",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("err", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func bodyStatus(err error) int {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// nothing better to do
	}
}
