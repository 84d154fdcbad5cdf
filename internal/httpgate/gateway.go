// Package httpgate exposes the MCP tool set over plain HTTP. Each tool is a
// POST endpoint taking the tool's JSON arguments, which lets non-MCP clients
// (curl, Open WebUI and friends) call the same handlers the stdio transport
// serves.
package httpgate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/frostlab/sensormcp/internal/server"
	"github.com/frostlab/sensormcp/internal/telemetry"
)

// requestIDHeader carries the per-request UUID in responses.
const requestIDHeader = "X-Request-Id"

// ToolInvoker dispatches a tool call by name. *server.MCPSensorToolServer
// implements it.
type ToolInvoker interface {
	ToolNames() []string
	Invoke(ctx context.Context, name string, args json.RawMessage) (any, error)
}

// Gateway is the HTTP wrapper around the tool server.
type Gateway struct {
	invoker ToolInvoker
	srv     *http.Server
	metrics *telemetry.MetricsCollector
	lg      *slog.Logger
}

// New creates a gateway serving the invoker's tools on addr. The address
// should be in the form "host:port" or ":8000".
func New(addr string, invoker ToolInvoker, metrics *telemetry.MetricsCollector) *Gateway {
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}
	g := &Gateway{
		invoker: invoker,
		metrics: metrics,
		lg:      slog.Default(),
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", g.healthHandler)
	r.Get("/openapi.json", g.openapiHandler)
	r.Post("/tools/{name}", g.toolHandler)

	g.srv = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return g
}

// requestID tags every request with a UUID, echoed in the response headers.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe binds the address and serves until Shutdown. Bind failures
// (port already in use, bad address) are returned before serving starts.
func (g *Gateway) ListenAndServe() error {
	l, err := net.Listen("tcp", g.srv.Addr)
	if err != nil {
		return err
	}
	g.lg.Info("HTTP gateway listening", "addr", g.srv.Addr)
	if err := g.srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler returns the gateway's HTTP handler, for serving on an external
// listener or in tests.
func (g *Gateway) Handler() http.Handler {
	return g.srv.Handler
}

// Shutdown drains in-flight requests and stops the server.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.lg.Info("Shutting down HTTP gateway")
	return g.srv.Shutdown(ctx)
}

func (g *Gateway) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"tools":  len(g.invoker.ToolNames()),
	})
}

// toolHandler runs one tool call. An empty body means "all defaults".
func (g *Gateway) toolHandler(w http.ResponseWriter, r *http.Request) {
	g.metrics.IncrementCounter(telemetry.MetricGatewayRequests, 1)

	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(r.Body)
	if err != nil {
		g.metrics.IncrementCounter(telemetry.MetricGatewayErrors, 1)
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		g.metrics.IncrementCounter(telemetry.MetricGatewayErrors, 1)
		writeError(w, http.StatusBadRequest, "request body must be a JSON object")
		return
	}

	result, err := g.invoker.Invoke(r.Context(), name, body)
	if err != nil {
		g.metrics.IncrementCounter(telemetry.MetricGatewayErrors, 1)
		if errors.Is(err, server.ErrUnknownTool) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		g.lg.Error("tool invocation failed", "tool", name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// openapiHandler serves a minimal OpenAPI document listing the tool
// endpoints, enough for API explorers to discover them.
func (g *Gateway) openapiHandler(w http.ResponseWriter, r *http.Request) {
	paths := map[string]any{}
	for _, name := range g.invoker.ToolNames() {
		paths["/tools/"+name] = map[string]any{
			"post": map[string]any{
				"operationId": name,
				"requestBody": map[string]any{
					"content": map[string]any{
						"application/json": map[string]any{
							"schema": map[string]any{"type": "object"},
						},
					},
				},
				"responses": map[string]any{
					"200": map[string]any{"description": "Tool result"},
				},
			},
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":       "sensormcp",
			"description": "HTTP gateway for the FROST SensorThings tool set",
			"version":     "1.0.0",
		},
		"paths": paths,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
