package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/mailnode/pkg/domain/model"
	"github.com/secmon-lab/mailnode/pkg/usecase"
)

const maxRequestBody = 1 << 20

// NodeHandler serves the host-facing node endpoints
type NodeHandler struct {
	nodeUC usecase.NodeUseCase
}

// NewNodeHandler creates a new NodeHandler
func NewNodeHandler(nodeUC usecase.NodeUseCase) *NodeHandler {
	return &NodeHandler{nodeUC: nodeUC}
}

// CredentialRequest carries the credential for option loading and credential tests
type CredentialRequest struct {
	Credentials model.Credential `json:"credentials"`
}

// ExecuteItem wraps the node parameters of one input item
type ExecuteItem struct {
	JSON model.InvocationItem `json:"json"`
}

// ExecuteRequest is the body of POST /api/execute
type ExecuteRequest struct {
	Credentials model.Credential `json:"credentials"`
	Items       []ExecuteItem    `json:"items"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "failed to decode request body", goerr.T(model.ErrTagInvalidParameter))
	}
	return nil
}

// HandleDescription returns the node metadata
func (h *NodeHandler) HandleDescription(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.nodeUC.Description())
}

// HandleCredentialDescription returns the credential type metadata
func (h *NodeHandler) HandleCredentialDescription(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, h.nodeUC.CredentialDescription())
}

// HandleCredentialTest runs the credential probe. A rejected key is still a
// 200 response whose status field reports the failure.
func (h *NodeHandler) HandleCredentialTest(w http.ResponseWriter, r *http.Request) {
	var req CredentialRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, r, http.StatusOK, h.nodeUC.TestCredential(r.Context(), req.Credentials))
}

// HandleLoadOptions populates a dynamic option list
func (h *NodeHandler) HandleLoadOptions(w http.ResponseWriter, r *http.Request) {
	method := chi.URLParam(r, "method")

	var req CredentialRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	options, err := h.nodeUC.LoadOptions(r.Context(), method, req.Credentials)
	if err != nil {
		ctxlog.From(r.Context()).Warn("Failed to load options", "method", method, "error", err)
		writeError(w, r, err, statusOf(err))
		return
	}

	writeJSON(w, r, http.StatusOK, options)
}

// HandleExecute runs the node over the supplied items and returns one output
// branch holding one {json} entry per item
func (h *NodeHandler) HandleExecute(w http.ResponseWriter, r *http.Request) {
	var req ExecuteRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	items := make([]model.InvocationItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = item.JSON
	}

	results, err := h.nodeUC.Execute(r.Context(), req.Credentials, items)
	if err != nil {
		ctxlog.From(r.Context()).Error("Node execution failed", "error", err)
		writeError(w, r, err, statusOf(err))
		return
	}

	writeJSON(w, r, http.StatusOK, [][]model.ExecutionResult{results})
}
