package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/platform/logger"
	"github.com/cardforge/cardforge/internal/service"
	"github.com/cardforge/cardforge/internal/study"
)

// StudyHandler drives the flip-card review flow over HTTP: sessions are
// created from stored sets and advanced one transition per request.
type StudyHandler struct {
	registry   *study.Registry
	collection *service.CollectionService
	logger     *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(
	registry *study.Registry,
	collection *service.CollectionService,
	log *slog.Logger,
) *StudyHandler {
	if registry == nil || collection == nil {
		// ALLOW-PANIC: Constructor enforcing required dependencies
		panic("registry and collection service cannot be nil for StudyHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudyHandler")
	}
	return &StudyHandler{
		registry:   registry,
		collection: collection,
		logger:     log.With(slog.String("component", "study_handler")),
	}
}

// Start handles POST /api/sets/{id}/sessions requests.
func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	setID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	set, err := h.collection.Get(r.Context(), setID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	sessionID, _, err := h.registry.Start(*set)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("study session started",
		slog.String("session_id", sessionID.String()),
		slog.String("set_id", setID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated,
		SessionCreatedResponse{SessionID: sessionID.String()})
}

// sessionFromPath resolves the {id} path parameter to an active session.
// On failure it writes the error response and returns false.
func (h *StudyHandler) sessionFromPath(
	w http.ResponseWriter,
	r *http.Request,
) (uuid.UUID, *study.Session, bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, nil, false
	}

	session, err := h.registry.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, nil, false
	}
	return id, session, true
}

// respondState writes the session snapshot, including the summary once the
// session is complete.
func (h *StudyHandler) respondState(w http.ResponseWriter, r *http.Request, session *study.Session) {
	state := session.Snapshot()
	if !state.Completed {
		shared.RespondWithJSON(w, r, http.StatusOK, state)
		return
	}

	summary, err := session.Summarize()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		study.State
		Summary study.Summary `json:"summary"`
	}{State: state, Summary: summary})
}

// Get handles GET /api/sessions/{id} requests.
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	_, session, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	h.respondState(w, r, session)
}

// Flip handles POST /api/sessions/{id}/flip requests.
func (h *StudyHandler) Flip(w http.ResponseWriter, r *http.Request) {
	_, session, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	if err := session.Flip(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respondState(w, r, session)
}

// Assess handles POST /api/sessions/{id}/assess requests.
func (h *StudyHandler) Assess(w http.ResponseWriter, r *http.Request) {
	_, session, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}

	var req AssessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "Request body must be JSON with an assessment field")
		return
	}

	if err := session.Assess(req.Assessment); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respondState(w, r, session)
}

// Previous handles POST /api/sessions/{id}/previous requests.
func (h *StudyHandler) Previous(w http.ResponseWriter, r *http.Request) {
	_, session, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	if err := session.Previous(); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.respondState(w, r, session)
}

// Restart handles POST /api/sessions/{id}/restart requests.
func (h *StudyHandler) Restart(w http.ResponseWriter, r *http.Request) {
	_, session, ok := h.sessionFromPath(w, r)
	if !ok {
		return
	}
	session.Restart()
	h.respondState(w, r, session)
}

// Exit handles DELETE /api/sessions/{id} requests, ending the review.
func (h *StudyHandler) Exit(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	h.registry.Remove(id)
	w.WriteHeader(http.StatusNoContent)
}
