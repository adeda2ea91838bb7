package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/domain/types"
	"github.com/secmon-lab/mailnode/pkg/usecase"
)

// Server represents the HTTP server the host talks to
type Server struct {
	*http.Server
	router      chi.Router
	nodeHandler *NodeHandler
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, nodeUC usecase.NodeUseCase) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	nodeHandler := NewNodeHandler(nodeUC)

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/node", nodeHandler.HandleDescription)
		r.Get("/credentials", nodeHandler.HandleCredentialDescription)
		r.Post("/credentials/test", nodeHandler.HandleCredentialTest)
		r.Post("/options/{method}", nodeHandler.HandleLoadOptions)
		r.Post("/execute", nodeHandler.HandleExecute)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:      router,
		nodeHandler: nodeHandler,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "mailnode",
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error     string `json:"error"`
	Node      string `json:"node,omitempty"`
	ItemIndex *int   `json:"item_index,omitempty"`
	Operation string `json:"operation,omitempty"`
	Status    any    `json:"remote_status,omitempty"`
}

// statusOf maps an error to the HTTP status reported to the host
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagInvalidCredential),
		goerr.HasTag(err, model.ErrTagInvalidParameter),
		goerr.HasTag(err, types.ErrTagUnsupportedOperation):
		return http.StatusBadRequest
	case goerr.HasTag(err, usecase.ErrTagUnknownLoadOptions):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagAPI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	resp := errorResponse{Error: err.Error()}

	var nodeErr *model.NodeAPIError
	if errors.As(err, &nodeErr) {
		idx := nodeErr.ItemIndex
		resp.Node = nodeErr.Node
		resp.ItemIndex = &idx
		resp.Operation = nodeErr.Operation.String()
	}
	if goErr := goerr.Unwrap(err); goErr != nil {
		resp.Error = goErr.Error()
		if v, ok := goerr.Values(err)["status"]; ok {
			resp.Status = v
		}
	}

	writeJSON(w, r, status, resp)
}
