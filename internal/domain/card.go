package domain

import "strings"

// Card represents a single flashcard: a question shown front-side and the
// answer revealed on flip. Cards carry no identity of their own; two cards
// are the same card exactly when both fields match.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Complete reports whether the card carries both a question and an answer
// after trimming surrounding whitespace. Only complete cards are eligible
// for persistence.
func (c Card) Complete() bool {
	return strings.TrimSpace(c.Question) != "" && strings.TrimSpace(c.Answer) != ""
}

// Equal reports structural equality: both question and answer match exactly.
// This is the deduplication rule used when cards are added to a working set.
func (c Card) Equal(other Card) bool {
	return c.Question == other.Question && c.Answer == other.Answer
}
