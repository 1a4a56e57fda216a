package api

import (
	"log/slog"
	"net/http"

	"github.com/cardforge/cardforge/internal/api/shared"
	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/parser"
	"github.com/cardforge/cardforge/internal/platform/logger"
)

// ParseHandler handles text-to-flashcard parsing requests.
type ParseHandler struct {
	logger *slog.Logger
}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler(log *slog.Logger) *ParseHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ParseHandler")
	}
	return &ParseHandler{
		logger: log.With(slog.String("component", "parse_handler")),
	}
}

// Parse handles POST /api/parse requests. Parsing is total: malformed lines
// are dropped, so the only error case is a malformed request body.
func (h *ParseHandler) Parse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ParseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err, "Request body must be JSON with a text field")
		return
	}

	cards := parser.Parse(req.Text)
	if cards == nil {
		cards = []domain.Card{}
	}

	log.Debug("parsed text into cards", slog.Int("cards", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, ParseResponse{Cards: cards})
}
