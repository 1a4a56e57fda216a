package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/editor"
	"github.com/cardforge/cardforge/internal/service"
	"github.com/cardforge/cardforge/internal/store"
	"github.com/cardforge/cardforge/internal/study"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var incomplete *editor.IncompleteCardsError

	switch {
	// Not found errors
	case errors.Is(err, store.ErrSetNotFound),
		errors.Is(err, study.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflicting state transitions
	case errors.Is(err, study.ErrAlreadyFlipped),
		errors.Is(err, study.ErrNotFlipped),
		errors.Is(err, study.ErrAtFirstCard),
		errors.Is(err, study.ErrSessionComplete),
		errors.Is(err, study.ErrSessionNotComplete),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrSetNameEmpty),
		errors.Is(err, domain.ErrSetNoCards),
		errors.Is(err, domain.ErrSetCardIncomplete),
		errors.Is(err, domain.ErrInvalidAssessment),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, editor.ErrIndexOutOfRange),
		errors.Is(err, editor.ErrUnknownField),
		errors.Is(err, editor.ErrWorkingSetEmpty),
		errors.Is(err, service.ErrImportFormat),
		errors.Is(err, store.ErrInvalidTheme),
		errors.Is(err, study.ErrNoCards),
		errors.As(err, &incomplete):
		return http.StatusBadRequest

	// Default: internal server error (includes gateway write failures)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var incomplete *editor.IncompleteCardsError

	switch {
	case errors.Is(err, store.ErrSetNotFound):
		return "Set not found"

	case errors.Is(err, study.ErrSessionNotFound):
		return "Study session not found"

	case errors.Is(err, study.ErrAlreadyFlipped):
		return "Card is already flipped"

	case errors.Is(err, study.ErrNotFlipped):
		return "Flip the card before assessing it"

	case errors.Is(err, study.ErrAtFirstCard):
		return "Already at the first card"

	case errors.Is(err, study.ErrSessionComplete):
		return "Study session is already complete"

	case errors.Is(err, study.ErrSessionNotComplete):
		return "Study session is not complete yet"

	case errors.Is(err, study.ErrNoCards):
		return "Set has no cards to study"

	case errors.Is(err, domain.ErrSetNameEmpty):
		return "Set name is required"

	case errors.Is(err, domain.ErrSetNoCards),
		errors.Is(err, editor.ErrWorkingSetEmpty):
		return "Add at least one card before saving"

	case errors.As(err, &incomplete):
		return fmt.Sprintf("%d card(s) are missing a question or answer", incomplete.Count)

	case errors.Is(err, domain.ErrSetCardIncomplete):
		return "Every card needs a question and an answer"

	case errors.Is(err, editor.ErrIndexOutOfRange):
		return "No card at that position"

	case errors.Is(err, editor.ErrUnknownField):
		return "Card field must be question or answer"

	case errors.Is(err, domain.ErrInvalidAssessment):
		return "Assessment must be easy, medium, or hard"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"

	case errors.Is(err, service.ErrImportFormat):
		return "Invalid file format. Please select a valid flashcard set JSON file."

	case errors.Is(err, store.ErrInvalidTheme):
		return "Theme must be dark or light"

	case errors.Is(err, store.ErrDuplicate):
		return "A set with this ID already exists"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err to a status code and safe message and writes the
// error response. An explicit non-empty userMessage overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
