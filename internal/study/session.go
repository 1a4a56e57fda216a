// Package study implements the flip-card review flow: a per-set session
// advances card by card, the user flips each card and grades it, and a
// completed session summarizes the grades into a mastery score.
package study

import (
	"errors"
	"math"
	"sync"

	"github.com/cardforge/cardforge/internal/domain"
)

// Session transition errors.
var (
	// ErrAlreadyFlipped is returned when flipping a card that is already
	// showing its answer.
	ErrAlreadyFlipped = errors.New("card is already flipped")

	// ErrNotFlipped is returned when assessing a card whose answer has not
	// been revealed yet.
	ErrNotFlipped = errors.New("card must be flipped before assessing")

	// ErrAtFirstCard is returned when stepping back from the first card.
	ErrAtFirstCard = errors.New("already at the first card")

	// ErrSessionComplete is returned when a reviewing transition is applied
	// to a completed session.
	ErrSessionComplete = errors.New("session is complete")

	// ErrSessionNotComplete is returned when a summary is requested before
	// every card has been assessed.
	ErrSessionNotComplete = errors.New("session is not complete")

	// ErrNoCards is returned when starting a session over a set with no cards.
	ErrNoCards = errors.New("set has no cards to study")
)

// Session is a sequential review of one set's cards. While reviewing with
// the card face-up (not flipped), the number of recorded results always
// equals the current card index; the session is complete exactly when every
// card has a result.
type Session struct {
	mu      sync.Mutex
	set     domain.Set
	index   int
	flipped bool
	results []domain.Assessment
}

// NewSession starts a review of the given set at the first card, face down,
// with no results recorded.
func NewSession(set domain.Set) (*Session, error) {
	if len(set.Cards) == 0 {
		return nil, ErrNoCards
	}
	return &Session{set: set}, nil
}

// Set returns the set under review.
func (s *Session) Set() domain.Set {
	return s.set
}

// Flip reveals the current card's answer. Flipping an already-flipped card
// is rejected.
func (s *Session) Flip() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete() {
		return ErrSessionComplete
	}
	if s.flipped {
		return ErrAlreadyFlipped
	}
	s.flipped = true
	return nil
}

// Assess records the grade for the current card and advances to the next
// one. Only valid when the card is flipped. On the last card the index
// stays put and the session becomes complete.
func (s *Session) Assess(label domain.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete() {
		return ErrSessionComplete
	}
	if !s.flipped {
		return ErrNotFlipped
	}
	if err := label.Validate(); err != nil {
		return err
	}

	s.results = append(s.results, label)
	s.flipped = false
	if s.index < len(s.set.Cards)-1 {
		s.index++
	}
	return nil
}

// Previous steps back to the prior card, clearing the flip state and undoing
// its recorded assessment so the result count stays consistent with the
// number of cards passed.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.complete() {
		return ErrSessionComplete
	}
	if s.index == 0 {
		return ErrAtFirstCard
	}

	s.index--
	s.flipped = false
	s.results = s.results[:len(s.results)-1]
	return nil
}

// Restart resets the session to its initial state over the same set.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = 0
	s.flipped = false
	s.results = nil
}

// Complete reports whether every card has been assessed.
func (s *Session) Complete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete()
}

func (s *Session) complete() bool {
	return len(s.results) == len(s.set.Cards)
}

// State is a snapshot of a session for display.
type State struct {
	SetID     string      `json:"set_id"`
	SetName   string      `json:"set_name"`
	Index     int         `json:"index"`
	Total     int         `json:"total"`
	Assessed  int         `json:"assessed"`
	Flipped   bool        `json:"flipped"`
	Completed bool        `json:"completed"`
	Card      domain.Card `json:"card"`
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		SetID:     s.set.ID.String(),
		SetName:   s.set.Name,
		Index:     s.index,
		Total:     len(s.set.Cards),
		Assessed:  len(s.results),
		Flipped:   s.flipped,
		Completed: s.complete(),
		Card:      s.set.Cards[s.index],
	}
}

// LabelCount is the tally for one assessment label in a session summary.
type LabelCount struct {
	Label   domain.Assessment `json:"label"`
	Count   int               `json:"count"`
	Percent int               `json:"percent"`
}

// Summary aggregates a completed session's results.
type Summary struct {
	Total   int          `json:"total"`
	Labels  []LabelCount `json:"labels"`
	Mastery int          `json:"mastery"`
}

// Summarize tallies results per label and derives the mastery score:
// round(100 × (easy + 0.5×medium) / total). Only valid once the session
// is complete.
func (s *Session) Summarize() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.complete() {
		return Summary{}, ErrSessionNotComplete
	}

	counts := make(map[domain.Assessment]int, len(domain.Assessments))
	for _, r := range s.results {
		counts[r]++
	}

	total := len(s.results)
	summary := Summary{Total: total}
	for _, label := range domain.Assessments {
		n := counts[label]
		summary.Labels = append(summary.Labels, LabelCount{
			Label:   label,
			Count:   n,
			Percent: int(math.Round(100 * float64(n) / float64(total))),
		})
	}

	weighted := float64(counts[domain.AssessmentEasy]) +
		0.5*float64(counts[domain.AssessmentMedium])
	summary.Mastery = int(math.Round(100 * weighted / float64(total)))

	return summary, nil
}
