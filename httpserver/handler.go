package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidlaprade/umbra-protocol/ens"
	"github.com/davidlaprade/umbra-protocol/interfaces"
	"github.com/davidlaprade/umbra-protocol/metrics"
)

// Handler processes HTTP requests for the resolver gateway. It validates the
// domain from the URL, forwards a single read to the resolver, and renders
// the result as JSON. The gateway performs no writes; publishing records
// requires a signing key and goes through the CLI.
type Handler struct {
	resolver interfaces.StealthKeyResolver
	log      *slog.Logger
}

// NewHandler creates a new HTTP request handler backed by the given resolver.
func NewHandler(resolver interfaces.StealthKeyResolver, log *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		log:      log,
	}
}

type recordResponse struct {
	Domain string `json:"domain"`
	Record string `json:"record"`
	Value  string `json:"value"`
}

type namehashResponse struct {
	Domain string `json:"domain"`
	Node   string `json:"node"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) domainFromRequest(w http.ResponseWriter, r *http.Request) (interfaces.DomainName, bool) {
	domain, err := interfaces.NewDomainName(chi.URLParam(r, "domain"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return "", false
	}
	return domain, true
}

// HandleNamehash returns the namehash node for a domain.
//
// URL format: GET /api/v1/namehash/{domain}
func (h *Handler) HandleNamehash(w http.ResponseWriter, r *http.Request) {
	domain, ok := h.domainFromRequest(w, r)
	if !ok {
		return
	}

	node, err := ens.Namehash(domain)
	if err != nil {
		h.log.Error("Namehash computation failed", "domain", domain, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "namehash computation failed"})
		return
	}

	writeJSON(w, http.StatusOK, namehashResponse{Domain: domain.String(), Node: node.Hex()})
}

// HandleSignature returns the signature record for a domain, or 404 when no
// record is published.
//
// URL format: GET /api/v1/signature/{domain}
func (h *Handler) HandleSignature(w http.ResponseWriter, r *http.Request) {
	h.handleRecord(w, r, "signature", h.resolver.GetSignature)
}

// HandlePublicKey returns the public key recovered from a domain's signature
// record, or 404 when no record is published.
//
// URL format: GET /api/v1/publickey/{domain}
func (h *Handler) HandlePublicKey(w http.ResponseWriter, r *http.Request) {
	h.handleRecord(w, r, "publickey", h.resolver.GetPublicKey)
}

// HandleBytecode returns the bytecode record for a domain, or 404 when no
// record is published.
//
// URL format: GET /api/v1/bytecode/{domain}
func (h *Handler) HandleBytecode(w http.ResponseWriter, r *http.Request) {
	h.handleRecord(w, r, "bytecode", h.resolver.GetBytecode)
}

// handleRecord labels responses and metrics by the API record name, not the
// underlying text-record key.
func (h *Handler) handleRecord(w http.ResponseWriter, r *http.Request, record string, fetch func(interfaces.DomainName) (string, error)) {
	domain, ok := h.domainFromRequest(w, r)
	if !ok {
		return
	}

	value, err := fetch(domain)
	if err != nil {
		h.log.Error("Record lookup failed", "domain", domain, "record", record, "err", err)
		metrics.IncResolve(record, metrics.OutcomeError)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "record lookup failed"})
		return
	}
	if value == "" {
		metrics.IncResolve(record, metrics.OutcomeAbsent)
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no record set for domain"})
		return
	}

	metrics.IncResolve(record, metrics.OutcomeFound)
	writeJSON(w, http.StatusOK, recordResponse{Domain: domain.String(), Record: record, Value: value})
}
