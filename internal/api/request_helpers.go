package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cardforge/cardforge/internal/domain"
)

// maxBodyBytes caps request bodies; set files and pasted notes are small.
const maxBodyBytes = 1 << 20 // 1 MiB

// decodeJSON decodes the request body into dst, rejecting oversized bodies.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrValidation)
	}
	return nil
}

// getPathUUID extracts and parses a UUID from the URL path parameters.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrInvalidID, paramName)
	}
	return id, nil
}

// getPathIndex extracts a non-negative integer index from the URL path.
// Range checking against the working set is the editor's concern.
func getPathIndex(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	index, err := strconv.Atoi(pathParam)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrValidation, paramName)
	}
	return index, nil
}
