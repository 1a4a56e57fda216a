// Package parser converts pasted free-form text into flashcards.
//
// The heuristic is deliberately simple and line-oriented: each line that
// looks like "Term: Definition" or "Term - Definition" (optionally prefixed
// with a "-" or "*" bullet) yields one card; every other line is skipped.
package parser

import (
	"regexp"
	"strings"

	"github.com/cardforge/cardforge/internal/domain"
)

var (
	bulletRe = regexp.MustCompile(`^[-*]\s*`)

	// The question side is non-greedy: the FIRST ":" or " - " in a line is
	// the split point. A question containing a colon is truncated at that
	// colon. This matches the behavior users already rely on when the same
	// text is re-imported, so it must not be "fixed".
	lineRe = regexp.MustCompile(`^(.+?)(:| - )(.*)$`)
)

// Parse splits text into lines and extracts one card per recognizable line.
// It is pure and total: it never fails, it preserves input line order, and
// every returned card has a non-empty trimmed question and answer.
func Parse(text string) []domain.Card {
	var cards []domain.Card
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		m := lineRe.FindStringSubmatch(clean)
		if m == nil {
			continue
		}
		question := strings.TrimSpace(m[1])
		answer := strings.TrimSpace(m[3])
		if question == "" || answer == "" {
			continue
		}
		cards = append(cards, domain.Card{Question: question, Answer: answer})
	}
	return cards
}
