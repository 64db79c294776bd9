package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spigell/pathfinder/internal/career"
	"github.com/spigell/pathfinder/internal/dialogue"
	"github.com/spigell/pathfinder/internal/profile"
	"github.com/spigell/pathfinder/internal/recommend"
)

const maxBodySize = 1 << 20 // 1MB

// Deps holds what the HTTP and MCP surfaces need. The session routes answer
// 503 when Sessions is nil or has no text generator.
type Deps struct {
	Recommender *recommend.Recommender
	Sessions    *dialogue.Manager
	Logger      *zap.Logger
}

type turnRequest struct {
	Message string `json:"message"`
}

type turnResponse struct {
	SessionID string         `json:"session_id"`
	Phase     dialogue.Phase `json:"phase"`
	Reply     string         `json:"reply"`
}

type recommendationsResponse struct {
	Recommendations []career.Scored `json:"recommendations"`
}

// NewHandler builds the JSON API router.
func NewHandler(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Logger))

	r.Get("/health", handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/careers", handleListCareers(deps))
		r.Get("/careers/{title}", handleGetCareer(deps))
		r.Get("/scenarios", handleScenarios)
		r.Get("/filters", handleFilters(deps))
		r.Post("/recommendations", handleRecommend(deps))

		r.Group(func(r chi.Router) {
			r.Use(requireDialogue(deps))

			r.Post("/sessions", handleStartSession(deps))
			r.Get("/sessions/{id}", handleGetSession(deps))
			r.Delete("/sessions/{id}", handleEndSession(deps))
			r.Post("/sessions/{id}/turns", handleTurn(deps))
			r.Get("/sessions/{id}/recommendations", handleSessionRecommendations(deps))
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleListCareers(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog := deps.Recommender.Catalog()

		records := catalog.Search(r.URL.Query().Get("q"))

		if raw := strings.TrimSpace(r.URL.Query().Get("category")); raw != "" {
			category, err := career.ParseCategory(raw)
			if err != nil {
				httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
				return
			}
			records = filterByCategory(records, category)
		}

		writeJSON(w, http.StatusOK, map[string]any{"careers": records})
	}
}

func handleGetCareer(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title, err := url.PathUnescape(chi.URLParam(r, "title"))
		if err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid title: %v", err)
			return
		}

		record, ok := deps.Recommender.Catalog().ByTitle(title)
		if !ok {
			httpError(w, http.StatusNotFound, "not_found_error", "career %q not found", title)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

func handleScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"scenarios": profile.Scenarios()})
}

func handleFilters(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := deps.Recommender.Filters()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "%v", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"filters":    filters,
			"thresholds": deps.Recommender.Thresholds(),
		})
	}
}

func handleRecommend(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		defer r.Body.Close()

		var p profile.StudentProfile
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		recs, err := deps.Recommender.Recommend(r.Context(), &p)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "recommend: %v", err)
			return
		}

		writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: nonNil(recs)})
	}
}

func handleStartSession(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, greeting := deps.Sessions.StartSession(r.Context())
		writeJSON(w, http.StatusCreated, turnResponse{
			SessionID: id,
			Phase:     dialogue.PhaseGreeting,
			Reply:     greeting,
		})
	}
}

func handleTurn(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
		defer r.Body.Close()

		var req turnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpError(w, http.StatusBadRequest, "invalid_request_error", "invalid request body: %v", err)
			return
		}

		id := chi.URLParam(r, "id")
		reply, err := deps.Sessions.ProcessTurn(r.Context(), id, req.Message)
		if err != nil {
			sessionError(w, err)
			return
		}

		phase, err := deps.Sessions.Phase(id)
		if err != nil {
			sessionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, turnResponse{SessionID: id, Phase: phase, Reply: reply})
	}
}

func handleGetSession(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := deps.Sessions.Snapshot(chi.URLParam(r, "id"))
		if err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	}
}

func handleSessionRecommendations(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recs, err := deps.Sessions.Recommendations(chi.URLParam(r, "id"))
		if err != nil {
			sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recommendationsResponse{Recommendations: nonNil(recs)})
	}
}

func handleEndSession(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Sessions.End(chi.URLParam(r, "id")); err != nil {
			sessionError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func requireDialogue(deps Deps) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if deps.Sessions == nil || !deps.Sessions.Available() {
				deps.Logger.Warn("dialogue request rejected", zap.Error(dialogue.ErrUnavailable))
				httpError(w, http.StatusServiceUnavailable, "initialization_error", "%v", dialogue.ErrUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dialogue.ErrSessionNotFound):
		httpError(w, http.StatusNotFound, "not_found_error", "%v", err)
	case errors.Is(err, dialogue.ErrEmptyMessage):
		httpError(w, http.StatusBadRequest, "invalid_request_error", "%v", err)
	default:
		httpError(w, http.StatusInternalServerError, "api_error", "%v", err)
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

func filterByCategory(records []career.Record, category career.Category) []career.Record {
	out := make([]career.Record, 0, len(records))
	for _, rec := range records {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out
}

func nonNil(recs []career.Scored) []career.Scored {
	if recs == nil {
		return []career.Scored{}
	}
	return recs
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, errType string, format string, args ...any) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": fmt.Sprintf(format, args...),
			"type":    errType,
		},
	})
}
