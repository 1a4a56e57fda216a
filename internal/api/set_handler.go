package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/platform/logger"
	"github.com/cardforge/cardforge/internal/service"
)

// SetHandler handles collection-level set requests: listing, deletion,
// duplication, and file import/export.
type SetHandler struct {
	collection *service.CollectionService
	logger     *slog.Logger
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(collection *service.CollectionService, log *slog.Logger) *SetHandler {
	if collection == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection service cannot be nil for SetHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SetHandler")
	}
	return &SetHandler{
		collection: collection,
		logger:     log.With(slog.String("component", "set_handler")),
	}
}

// List handles GET /api/sets requests with optional search, tag, and sort
// query parameters.
func (h *SetHandler) List(w http.ResponseWriter, r *http.Request) {
	q := service.Query{
		Search: r.URL.Query().Get("search"),
		Tag:    r.URL.Query().Get("tag"),
		Sort:   r.URL.Query().Get("sort"),
	}

	sets, err := h.collection.List(r.Context(), q)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SetListResponse{Sets: sets, Total: len(sets)})
}

// Get handles GET /api/sets/{id} requests.
func (h *SetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	set, err := h.collection.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, set)
}

// Delete handles DELETE /api/sets/{id} requests. The client is responsible
// for confirming with the user first.
func (h *SetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.collection.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Duplicate handles POST /api/sets/{id}/duplicate requests.
func (h *SetHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	dup, err := h.collection.Duplicate(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, dup)
}

// Export handles GET /api/sets/{id}/export requests, returning the set as a
// pretty-printed JSON attachment named after the set.
func (h *SetHandler) Export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	filename, data, err := h.collection.Export(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write export response", "error", err)
	}
}

// Import handles POST /api/sets/import requests. The body is a previously
// exported set file; a payload without name and cards is rejected whole.
func (h *SetHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		HandleAPIError(w, r, service.ErrImportFormat, "")
		return
	}

	set, err := h.collection.Import(r.Context(), body)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, set)
}

// Tags handles GET /api/sets/tags requests.
func (h *SetHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.collection.Tags(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, TagsResponse{Tags: tags})
}
