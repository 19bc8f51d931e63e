package http

import (
	"embed"
	"html/template"
	"net/http"
	"slices"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/plotly"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// panel is one chart slot on the dashboard page.
type panel struct {
	ID     string
	Figure template.JS
}

type dashboardPage struct {
	Panels      []panel
	Rows        int
	GeneratedAt string
}

type errorPage struct {
	Message string
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.metrics.Requests.WithLabelValues("dashboard").Inc()

	res, err := s.builder.Run(r.Context())
	if err != nil {
		s.renderError(w, "The air quality dataset could not be loaded.")
		return
	}

	encoded, err := plotly.EncodeViews(res.Views)
	if err != nil {
		s.logger.Error("encode views failed", "error", err)
		s.renderError(w, "The dashboard charts could not be rendered.")
		return
	}

	page := dashboardPage{
		Rows:        res.Rows,
		GeneratedAt: res.GeneratedAt.UTC().Format(time.RFC1123),
	}
	for _, name := range domain.ViewNames {
		page.Panels = append(page.Panels, panel{
			ID:     name,
			Figure: template.JS(encoded[name]), //nolint:gosec // figure JSON is produced by our encoder
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "dashboard.html", page); err != nil {
		s.logger.Error("render dashboard failed", "error", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if err := templates.ExecuteTemplate(w, "error.html", errorPage{Message: message}); err != nil {
		s.logger.Error("render error page failed", "error", err)
	}
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	s.metrics.Requests.WithLabelValues("charts").Inc()

	res, err := s.builder.Run(r.Context())
	if err != nil {
		renderJSONError(w, r, http.StatusInternalServerError, "dataset could not be loaded")
		return
	}

	encoded, err := plotly.EncodeViews(res.Views)
	if err != nil {
		s.logger.Error("encode views failed", "error", err)
		renderJSONError(w, r, http.StatusInternalServerError, "charts could not be encoded")
		return
	}
	render.JSON(w, r, encoded)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.metrics.Requests.WithLabelValues("chart").Inc()

	name := chi.URLParam(r, "view")
	if !slices.Contains(domain.ViewNames, name) {
		renderJSONError(w, r, http.StatusNotFound, "unknown view "+name)
		return
	}

	res, err := s.builder.Run(r.Context())
	if err != nil {
		renderJSONError(w, r, http.StatusInternalServerError, "dataset could not be loaded")
		return
	}

	data, err := plotly.Encode(res.Views[name])
	if err != nil {
		s.logger.Error("encode view failed", "view", name, "error", err)
		renderJSONError(w, r, http.StatusInternalServerError, "chart could not be encoded")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data) //nolint:errcheck // best-effort response body
}

func renderJSONError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": message})
}
