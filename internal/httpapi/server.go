// Package httpapi exposes the query service over HTTP: GET /health and
// GET /ranges (§6). Routing is gorilla/mux; CORS is rs/cors, both
// allowing any origin since this is a read-only local analysis tool.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/aggroot/pokertools/internal/query"
	"github.com/aggroot/pokertools/internal/rangeerr"
)

// Server wraps an http.Server bound to the query service's routes.
type Server struct {
	svc     *query.Service
	httpSrv *http.Server
}

// NewServer builds a Server listening on addr, backed by svc.
func NewServer(addr string, svc *query.Service) *Server {
	s := &Server{svc: svc}

	router := mux.NewRouter()
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/ranges", s.handleRanges).Methods(http.MethodGet, http.MethodOptions)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	s.httpSrv = &http.Server{
		Addr:    addr,
		Handler: handler,
	}
	return s
}

// ListenAndServe blocks serving requests until the server is shut down.
func (s *Server) ListenAndServe() error {
	slog.Info("range query service listening", "addr", s.httpSrv.Addr)
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server, letting in-flight requests
// finish within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down range query service")
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRanges(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := s.svc.QueryRanges(filters)
	if err != nil {
		switch {
		case errors.Is(err, rangeerr.ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, rangeerr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func parseFilters(q map[string][]string) (query.Filters, error) {
	get := func(name string) string {
		if v, ok := q[name]; ok && len(v) > 0 {
			return v[0]
		}
		return ""
	}
	getFloat := func(name string) (*float64, error) {
		raw := get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid float for " + name + ": " + raw)
		}
		return &v, nil
	}

	stackMin, err := getFloat("stack_bb_min")
	if err != nil {
		return query.Filters{}, err
	}
	stackMax, err := getFloat("stack_bb_max")
	if err != nil {
		return query.Filters{}, err
	}

	limit := 0
	if raw := get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return query.Filters{}, errors.New("invalid int for limit: " + raw)
		}
		limit = v
	}

	return query.Filters{
		Position:        get("position"),
		Stage:           get("stage"),
		Action:          get("action"),
		TournamentStage: get("tournament_stage"),
		PotBucket:       get("pot_bucket"),
		BBBucket:        get("bb_bucket"),
		StackBucket:     get("stack_bucket"),
		Player:          get("player"),
		TournamentID:    get("tournament_id"),
		Cards:           get("cards"),
		StackBBMin:      stackMin,
		StackBBMax:      stackMax,
		Limit:           limit,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		slog.Error("write json response", "error", err)
	}
}
