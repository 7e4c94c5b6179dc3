package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ehdc-llpg/housenumber/internal/address"
	"github.com/ehdc-llpg/housenumber/internal/batch"
)

const (
	// maxBatchAddresses caps a single POST request.
	maxBatchAddresses = 1000
	// MaxBodyBytes caps the POST body before it is decoded.
	MaxBodyBytes = 1 << 20
)

// ParseHandler exposes address parsing over HTTP.
type ParseHandler struct {
	Factory   *address.Factory
	Processor *batch.Processor
	Logger    *zap.Logger
}

// ParseRequest is the POST body: either one address or a list.
type ParseRequest struct {
	Address   *string  `json:"address"`
	Addresses []string `json:"addresses"`
}

// ParseResponse wraps a single result; Result is null when parsing faulted.
type ParseResponse struct {
	Address string          `json:"address"`
	Result  *address.Result `json:"result"`
}

// BatchResponse is returned for a list of addresses.
type BatchResponse struct {
	Results []batch.Outcome `json:"results"`
	Stats   batch.Stats     `json:"stats"`
}

// ParseQuery handles GET /api/parse?address=...
func (h *ParseHandler) ParseQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("address") {
		http.Error(w, "address parameter required", http.StatusBadRequest)
		return
	}
	h.parseOne(w, query.Get("address"))
}

// ParseBody handles POST /api/parse
func (h *ParseHandler) ParseBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	switch {
	case req.Address != nil && req.Addresses == nil:
		h.parseOne(w, *req.Address)
	case req.Address == nil && req.Addresses != nil:
		h.parseMany(w, r, req.Addresses)
	default:
		http.Error(w, "exactly one of address or addresses required", http.StatusBadRequest)
	}
}

func (h *ParseHandler) parseOne(w http.ResponseWriter, addr string) {
	res, ok := h.Factory.New(addr).Operation()
	resp := ParseResponse{Address: addr}
	status := http.StatusOK
	if ok {
		resp.Result = &res
	} else {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp, h.Logger)
}

func (h *ParseHandler) parseMany(w http.ResponseWriter, r *http.Request, addrs []string) {
	if len(addrs) > maxBatchAddresses {
		http.Error(w, "too many addresses", http.StatusRequestEntityTooLarge)
		return
	}

	outcomes, stats, err := h.Processor.Process(r.Context(), addrs)
	if err != nil {
		h.Logger.Warn("batch request aborted", zap.Error(err))
		http.Error(w, "Request cancelled", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, BatchResponse{Results: outcomes, Stats: stats}, h.Logger)
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
