package api

import "github.com/cardforge/cardforge/internal/domain"

// ParseRequest is the payload for POST /api/parse.
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseResponse carries the cards extracted from pasted text.
type ParseResponse struct {
	Cards []domain.Card `json:"cards"`
}

// AddCardsRequest is the payload for POST /api/editor/cards.
type AddCardsRequest struct {
	Cards []domain.Card `json:"cards"`
}

// UpdateCardRequest is the payload for PATCH /api/editor/cards/{index}.
type UpdateCardRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// SaveSetRequest is the payload for POST /api/editor/save. Tags is the raw
// comma-separated tags text exactly as typed.
type SaveSetRequest struct {
	Name string `json:"name"`
	Tags string `json:"tags"`
}

// AssessRequest is the payload for POST /api/sessions/{id}/assess.
type AssessRequest struct {
	Assessment domain.Assessment `json:"assessment"`
}

// ThemeResponse carries the theme preference in both directions.
type ThemeResponse struct {
	Theme string `json:"theme"`
}

// SessionCreatedResponse is returned when a study session starts.
type SessionCreatedResponse struct {
	SessionID string `json:"session_id"`
}

// TagsResponse lists the distinct tags across the collection.
type TagsResponse struct {
	Tags []string `json:"tags"`
}

// SetListResponse is the filtered, sorted collection listing.
type SetListResponse struct {
	Sets  []domain.Set `json:"sets"`
	Total int          `json:"total"`
}
