package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/riffcut/riffcut-server/internal/plan"
)

const version = "0.1.0"

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Get("/health", healthHandler(cfg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", generatePlanHandler(cfg))
		r.Post("/clips", importClipHandler(cfg))
		r.Get("/render/script", renderScriptHandler(cfg))
	})

	return r
}

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(cfg.StartTime).Seconds())
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Version: version,
			UptimeS: uptime,
		})
	}
}

func generatePlanHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		result, err := cfg.Planner.BuildPlan(r.Context(), resolveProject(req.Project), req.Clips)
		if err != nil {
			var invalid *plan.InvalidRequestError
			if errors.As(err, &invalid) {
				WriteError(w, http.StatusBadRequest, invalid.Error(), "INVALID_REQUEST")
				return
			}
			WriteError(w, http.StatusInternalServerError, "plan generation failed", "INTERNAL_ERROR")
			return
		}

		WriteJSON(w, http.StatusOK, result)
	}
}

func importClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportClipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		if req.Name == "" {
			WriteError(w, http.StatusBadRequest, "name is required", "BAD_REQUEST")
			return
		}

		clip := plan.DescribeClip(req.Name)
		if req.DurationSeconds > 0 {
			clip.DurationSeconds = req.DurationSeconds
		}

		WriteJSON(w, http.StatusCreated, clip)
	}
}

func renderScriptHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, RenderScript())
	}
}
