package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"

	"art-auction/internal/game"
	"art-auction/internal/logging"
	"art-auction/internal/registry"
)

func apiLogMiddleware() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(logging.Writer(), nil)),
		&httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				return []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
					slog.String("route", routePattern(req)),
				}
			},
		},
	)
}

// routePattern prefers the chi pattern ("/api/games/{game_id}/bids")
// over the raw path so log lines aggregate per endpoint.
func routePattern(req *http.Request) string {
	if rc := chi.RouteContext(req.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return req.URL.Path
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeHTTPError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]any{"error": code})
}

// writeDomainError maps a sentinel from the core onto an HTTP status.
// The error text is the response; rejected actions answer the caller
// only and never publish an event.
func writeDomainError(w http.ResponseWriter, err error) {
	writeHTTPError(w, domainStatus(err), err.Error())
}

func domainStatus(err error) int {
	switch {
	case errors.Is(err, registry.ErrNotFound),
		errors.Is(err, game.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, registry.ErrDuplicateID),
		errors.Is(err, game.ErrDuplicateID),
		errors.Is(err, game.ErrInvalidState),
		errors.Is(err, game.ErrRoundAlreadyInProgress),
		errors.Is(err, game.ErrWaitingForHost),
		errors.Is(err, game.ErrInsufficientPlayers),
		errors.Is(err, game.ErrDealFailure):
		return http.StatusConflict
	case errors.Is(err, game.ErrValidation),
		errors.Is(err, game.ErrBidTooLow),
		errors.Is(err, game.ErrInsufficientChips):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeHTTPError(w, http.StatusBadRequest, "invalid_request")
		return false
	}
	return true
}
