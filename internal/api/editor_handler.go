package api

import (
	"log/slog"
	"net/http"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/editor"
	"github.com/cardforge/cardforge/internal/platform/logger"
	"github.com/cardforge/cardforge/internal/service"
)

// EditorHandler exposes the working-set editor: the transient list of cards
// being assembled or edited before it is saved as a named set.
type EditorHandler struct {
	editor     *editor.Editor
	collection *service.CollectionService
	logger     *slog.Logger
}

// NewEditorHandler creates a new EditorHandler.
func NewEditorHandler(
	ed *editor.Editor,
	collection *service.CollectionService,
	log *slog.Logger,
) *EditorHandler {
	if ed == nil || collection == nil {
		// ALLOW-PANIC: Constructor enforcing required dependencies
		panic("editor and collection service cannot be nil for EditorHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for EditorHandler")
	}
	return &EditorHandler{
		editor:     ed,
		collection: collection,
		logger:     log.With(slog.String("component", "editor_handler")),
	}
}

// Snapshot handles GET /api/editor requests.
func (h *EditorHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}

// AddCards handles POST /api/editor/cards requests: append parsed or manual
// cards to the working set, deduplicating structurally.
func (h *EditorHandler) AddCards(w http.ResponseWriter, r *http.Request) {
	var req AddCardsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "Request body must be JSON with a cards field")
		return
	}

	h.editor.AddCards(req.Cards)
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}

// AddBlankCard handles POST /api/editor/cards/blank requests.
func (h *EditorHandler) AddBlankCard(w http.ResponseWriter, r *http.Request) {
	h.editor.AddBlankCard()
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}

// UpdateCard handles PATCH /api/editor/cards/{index} requests.
func (h *EditorHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	index, err := getPathIndex(r, "index")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateCardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "Request body must be JSON with field and value")
		return
	}

	if err := h.editor.UpdateCard(index, req.Field, req.Value); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}

// DeleteCard handles DELETE /api/editor/cards/{index} requests.
func (h *EditorHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	index, err := getPathIndex(r, "index")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.editor.DeleteCard(index); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}

// BeginEdit handles POST /api/editor/edit/{id} requests: load a stored set
// into the working set for editing.
func (h *EditorHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
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

	h.editor.BeginEdit(*set)
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}

// Save handles POST /api/editor/save requests. The working set is validated
// and persisted; only after the write succeeds is the editor cleared, so a
// failed write never loses the user's cards.
func (h *EditorHandler) Save(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SaveSetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "Request body must be JSON with name and tags")
		return
	}

	set, err := h.editor.BuildSet(req.Name, req.Tags)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if _, editing := h.editor.Editing(); editing {
		err = h.collection.Update(r.Context(), *set)
	} else {
		err = h.collection.Create(r.Context(), *set)
	}
	if err != nil {
		// The working set is kept so the user can retry the save.
		HandleAPIError(w, r, err, "Saving the set failed; your cards are still here")
		return
	}

	h.editor.Reset()
	log.Info("working set saved",
		slog.String("set_id", set.ID.String()),
		slog.String("name", set.Name))
	shared.RespondWithJSON(w, r, http.StatusCreated, set)
}

// Cancel handles POST /api/editor/cancel requests: discard the working set
// and any edit in progress.
func (h *EditorHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.editor.Reset()
	shared.RespondWithJSON(w, r, http.StatusOK, h.editor.Snapshot())
}
