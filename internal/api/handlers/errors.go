package handlers

import (
	"context"
	"errors"
	"log"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
	"net/http"
)

type errorKind struct {
	err    error
	status int
	kind   string
	// expose puts the full wrapped message in the response; otherwise only the sentinel's.
	expose bool
}

// Order matters only for readability; every sentinel is distinct.
var errorKinds = []errorKind{
	{domain.ErrEmptySelection, http.StatusUnprocessableEntity, "empty_selection", false},
	{domain.ErrMissingDistance, http.StatusUnprocessableEntity, "missing_distance", false},
	{domain.ErrUnknownItem, http.StatusUnprocessableEntity, "unknown_item", true},
	{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input", true},
	{domain.ErrAddressNotFound, http.StatusUnprocessableEntity, "address_not_found", true},
	{domain.ErrRouteNotFound, http.StatusUnprocessableEntity, "route_not_found", false},
	{domain.ErrInvalidRequest, http.StatusBadRequest, "invalid_request", false},
	{domain.ErrInvalidKey, http.StatusBadGateway, "invalid_key", false},
	{domain.ErrQuotaExceeded, http.StatusServiceUnavailable, "quota_exceeded", false},
	{domain.ErrTimeout, http.StatusGatewayTimeout, "timeout", false},
	{domain.ErrNetwork, http.StatusBadGateway, "network", false},
	{domain.ErrUpstream, http.StatusBadGateway, "upstream", false},
}

// writeDomainError maps err onto a status code and a machine-readable kind.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	reqID := obs.RequestID(r.Context())

	if errors.Is(err, context.Canceled) {
		log.Printf("req_id=%s op=%s canceled: %v", reqID, op, err)
		return
	}

	for _, k := range errorKinds {
		if !errors.Is(err, k.err) {
			continue
		}

		if k.status >= http.StatusInternalServerError {
			log.Printf("req_id=%s op=%s failed: %v", reqID, op, err)
		}

		msg := k.err.Error()
		if k.expose {
			msg = err.Error()
		}
		writeError(w, r, k.status, k.kind, msg)
		return
	}

	log.Printf("req_id=%s op=%s failed: %v", reqID, op, err)
	writeError(w, r, http.StatusInternalServerError, "internal", "internal server error")
}
