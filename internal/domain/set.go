package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Set-specific validation errors.
var (
	// ErrSetIDEmpty is returned when a set ID is empty or nil.
	ErrSetIDEmpty = errors.New("set ID cannot be empty")

	// ErrSetNameEmpty is returned when a set's name is empty after trimming.
	ErrSetNameEmpty = errors.New("set name cannot be empty")

	// ErrSetNoCards is returned when a set is saved with no cards.
	ErrSetNoCards = errors.New("set must contain at least one card")

	// ErrSetCardIncomplete is returned when a set contains a card missing
	// its question or answer.
	ErrSetCardIncomplete = errors.New("set contains an incomplete card")
)

// CopySuffix is appended to a set's name when it is duplicated.
const CopySuffix = " (Copy)"

// Set is a named, tagged, ordered collection of cards. Each set carries a
// stable generated ID assigned at creation; the Created timestamp (milliseconds
// since epoch, matching the persisted wire format) is immutable once set and
// survives edits.
type Set struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Tags    []string  `json:"tags"`
	Cards   []Card    `json:"cards"`
	Created int64     `json:"created"`
}

// NewSet creates a Set with a fresh ID and creation timestamp.
// The name is trimmed; tags and cards are taken as given.
// Returns an error if validation fails.
func NewSet(name string, tags []string, cards []Card) (*Set, error) {
	set := &Set{
		ID:      uuid.New(),
		Name:    strings.TrimSpace(name),
		Tags:    tags,
		Cards:   cards,
		Created: time.Now().UnixMilli(),
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}

	return set, nil
}

// Validate checks the set's invariants: a non-nil ID, a non-empty trimmed
// name, at least one card, and every card complete.
func (s *Set) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSetIDEmpty
	}

	if strings.TrimSpace(s.Name) == "" {
		return ErrSetNameEmpty
	}

	if len(s.Cards) == 0 {
		return ErrSetNoCards
	}

	for _, card := range s.Cards {
		if !card.Complete() {
			return ErrSetCardIncomplete
		}
	}

	return nil
}

// Clone produces the duplicate of the set: same tags and cards, a decorated
// name, a fresh ID, and a fresh creation timestamp.
func (s *Set) Clone() *Set {
	dup := &Set{
		ID:      uuid.New(),
		Name:    s.Name + CopySuffix,
		Tags:    append([]string(nil), s.Tags...),
		Cards:   append([]Card(nil), s.Cards...),
		Created: time.Now().UnixMilli(),
	}
	return dup
}

// HasTag reports whether the set carries the exact tag.
// Tags are treated as a list; membership is case-sensitive.
func (s *Set) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Matches reports whether the search string matches the set name or any tag,
// case-insensitively by substring. An empty search matches everything.
func (s *Set) Matches(search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(s.Name), needle) {
		return true
	}
	for _, t := range s.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
