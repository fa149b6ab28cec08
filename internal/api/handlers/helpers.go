package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"moving-quote-service/internal/api/dto"
	"moving-quote-service/internal/domain"
	"moving-quote-service/internal/platform/obs"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: req_id=%s method=%s path=%s err=%v", obs.RequestID(r.Context()), r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, kind, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg, Kind: kind})
}

// decodeJSON reads exactly one JSON object of at most maxBodyBytes with no unknown
// fields and validates it. Failures are reported as ErrInvalidInput.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json body: %v: %w", err, domain.ErrInvalidInput)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("body must contain only one JSON object: %w", domain.ErrInvalidInput)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("field %s failed %q validation: %w", fe.Namespace(), fe.Tag(), domain.ErrInvalidInput)
		}
		return fmt.Errorf("validate body: %v: %w", err, domain.ErrInvalidInput)
	}

	return nil
}
