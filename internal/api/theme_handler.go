package api

import (
	"log/slog"
	"net/http"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/store"
)

// ThemeHandler reads and writes the dark/light theme preference.
type ThemeHandler struct {
	prefs  *store.PreferenceStore
	logger *slog.Logger
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(prefs *store.PreferenceStore, log *slog.Logger) *ThemeHandler {
	if prefs == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("preference store cannot be nil for ThemeHandler")
	}
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ThemeHandler")
	}
	return &ThemeHandler{
		prefs:  prefs,
		logger: log.With(slog.String("component", "theme_handler")),
	}
}

// Get handles GET /api/theme requests.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	theme, err := h.prefs.Theme(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ThemeResponse{Theme: theme})
}

// Put handles PUT /api/theme requests.
func (h *ThemeHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req ThemeResponse
	if err := decodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "Request body must be JSON with a theme field")
		return
	}

	if err := h.prefs.SetTheme(r.Context(), req.Theme); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ThemeResponse{Theme: req.Theme})
}
