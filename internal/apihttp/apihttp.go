// Package apihttp implements the HTTP handlers of the Gradewise API.
package apihttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/k11v/gradewise/internal/apidocs"
	"github.com/k11v/gradewise/internal/greeting"
	"github.com/k11v/gradewise/internal/healthcheck"
)

const welcomeMessage = "Welcome to the Gradewise API!"

// Database is the health check storage used by the handler.
type Database interface {
	Ping(ctx context.Context) error
	LatestHealthCheck(ctx context.Context) (*healthcheck.HealthCheck, error)
	CreateHealthCheck(ctx context.Context, status string) (*healthcheck.HealthCheck, error)
}

// Counter is the shared counter used by the handler.
type Counter interface {
	Count(ctx context.Context) (int64, error)
	Add(ctx context.Context, delta int64) (int64, error)
	Reset(ctx context.Context) error
}

type Greeter interface {
	Greet(ctx context.Context, name string) (string, error)
}

type Handler struct {
	db      Database // optional
	counter Counter  // required
	greeter Greeter  // required
	log     *slog.Logger
	now     func() time.Time

	mux *http.ServeMux
}

// NewHandler returns a new Handler.
// A nil db means the API runs without a database.
func NewHandler(db Database, counter Counter, greeter Greeter, log *slog.Logger, development bool) *Handler {
	h := &Handler{
		db:      db,
		counter: counter,
		greeter: greeter,
		log:     log.With("component", "apihttp"),
		now:     time.Now,
		mux:     http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.GetWelcome)
	h.mux.HandleFunc("GET /health", h.GetHealth)
	h.mux.HandleFunc("GET /db-test", h.GetDatabaseTest)
	h.mux.HandleFunc("GET /greet", h.Greet)
	h.mux.HandleFunc("GET /counter", h.GetCounter)
	h.mux.HandleFunc("POST /counter/increment", h.IncrementCounter)
	h.mux.HandleFunc("POST /counter/decrement", h.DecrementCounter)
	h.mux.HandleFunc("POST /counter/add", h.AddToCounter)
	h.mux.HandleFunc("POST /counter/reset", h.ResetCounter)
	if development {
		h.mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// GetWelcome godoc
//
//	@Summary	Welcome message
//	@Produce	plain
//	@Success	200	{string}	string
//	@Router		/ [get]
func (h *Handler) GetWelcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeMessage))
}

type DatabaseStatus struct {
	Status string `json:"status"` // "connected", "error" or "not_connected"
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status   string         `json:"status"`
	Time     string         `json:"time"`
	Database DatabaseStatus `json:"database"`
}

// GetHealth godoc
//
//	@Summary	Health check
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
		Time:   h.now().Format(time.RFC3339),
	}

	if h.db == nil {
		resp.Database = DatabaseStatus{Status: "not_connected"}
	} else if err := h.db.Ping(r.Context()); err != nil {
		h.log.Warn("database ping failed", "error", err)
		resp.Database = DatabaseStatus{Status: "error", Error: err.Error()}
	} else {
		resp.Database = DatabaseStatus{Status: "connected"}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DatabaseTestResponse struct {
	Message     string `json:"message"`
	LastStatus  string `json:"last_status"`
	LastChecked string `json:"last_checked"`
	CurrentTime string `json:"current_time"`
}

// GetDatabaseTest godoc
//
//	@Summary	Database connectivity test
//	@Description	Reads the latest health check and records a new one.
//	@Produce	json
//	@Success	200	{object}	DatabaseTestResponse
//	@Failure	500	{object}	ErrorResponse
//	@Failure	503	{object}	ErrorResponse
//	@Router		/db-test [get]
func (h *Handler) GetDatabaseTest(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		h.writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "database not connected"})
		return
	}

	last, err := h.db.LatestHealthCheck(r.Context())
	if err != nil && !errors.Is(err, healthcheck.ErrNotFound) {
		h.serveServerError(w, "failed to get health check status", err)
		return
	}

	if _, err = h.db.CreateHealthCheck(r.Context(), "api_test"); err != nil {
		h.serveServerError(w, "failed to update health check", err)
		return
	}

	resp := DatabaseTestResponse{
		Message:     "database test successful",
		CurrentTime: h.now().Format(time.RFC3339),
	}
	if last != nil {
		resp.LastStatus = last.Status
		resp.LastChecked = last.CheckedAt.Format(time.RFC3339)
	}

	h.writeJSON(w, http.StatusOK, resp)
}

type GreetResponse struct {
	Message string `json:"message"`
}

// Greet godoc
//
//	@Summary	Greet a user
//	@Produce	json
//	@Param		name	query		string	true	"Name to greet"
//	@Success	200		{object}	GreetResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/greet [get]
func (h *Handler) Greet(w http.ResponseWriter, r *http.Request) {
	// Query value name.
	const queryValueName = "name"
	message, err := h.greeter.Greet(r.Context(), r.URL.Query().Get(queryValueName))
	if err != nil {
		if errors.Is(err, greeting.ErrEmptyName) {
			h.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: fmt.Sprintf("invalid %q query value", queryValueName), Details: err.Error()})
		} else {
			h.serveServerError(w, "failed to greet", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, GreetResponse{Message: message})
}

type CounterResponse struct {
	Count int64 `json:"count"`
}

// GetCounter godoc
//
//	@Summary	Current counter value
//	@Produce	json
//	@Success	200	{object}	CounterResponse
//	@Router		/counter [get]
func (h *Handler) GetCounter(w http.ResponseWriter, r *http.Request) {
	count, err := h.counter.Count(r.Context())
	if err != nil {
		h.serveServerError(w, "failed to get counter", err)
		return
	}
	h.writeJSON(w, http.StatusOK, CounterResponse{Count: count})
}

// IncrementCounter godoc
//
//	@Summary	Increment the counter
//	@Produce	json
//	@Success	200	{object}	CounterResponse
//	@Router		/counter/increment [post]
func (h *Handler) IncrementCounter(w http.ResponseWriter, r *http.Request) {
	h.addToCounter(w, r, 1)
}

// DecrementCounter godoc
//
//	@Summary	Decrement the counter
//	@Produce	json
//	@Success	200	{object}	CounterResponse
//	@Router		/counter/decrement [post]
func (h *Handler) DecrementCounter(w http.ResponseWriter, r *http.Request) {
	h.addToCounter(w, r, -1)
}

// AddToCounter godoc
//
//	@Summary	Add a value to the counter
//	@Produce	json
//	@Param		value	query		int	true	"Value to add"
//	@Success	200		{object}	CounterResponse
//	@Failure	422		{object}	ErrorResponse
//	@Router		/counter/add [post]
func (h *Handler) AddToCounter(w http.ResponseWriter, r *http.Request) {
	// Query value value.
	const queryValueValue = "value"
	value, err := strconv.ParseInt(r.URL.Query().Get(queryValueValue), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: fmt.Sprintf("invalid %q query value", queryValueValue), Details: err.Error()})
		return
	}
	h.addToCounter(w, r, value)
}

func (h *Handler) addToCounter(w http.ResponseWriter, r *http.Request, delta int64) {
	count, err := h.counter.Add(r.Context(), delta)
	if err != nil {
		h.serveServerError(w, "failed to update counter", err)
		return
	}
	h.writeJSON(w, http.StatusOK, CounterResponse{Count: count})
}

// ResetCounter godoc
//
//	@Summary	Reset the counter to zero
//	@Produce	json
//	@Success	200	{object}	CounterResponse
//	@Router		/counter/reset [post]
func (h *Handler) ResetCounter(w http.ResponseWriter, r *http.Request) {
	if err := h.counter.Reset(r.Context()); err != nil {
		h.serveServerError(w, "failed to reset counter", err)
		return
	}
	h.writeJSON(w, http.StatusOK, CounterResponse{Count: 0})
}

func (h *Handler) serveServerError(w http.ResponseWriter, msg string, err error) {
	h.log.Error("server error", "error", fmt.Errorf("%s: %w", msg, err))
	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: msg, Details: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("failed to encode response", "error", err)
	}
}
