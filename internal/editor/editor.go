// Package editor holds the transient working set of cards being assembled
// before they are saved as a named set, along with the create-vs-edit mode
// tracking for the set editor.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cardforge/cardforge/internal/domain"
)

// Editor state errors.
var (
	// ErrIndexOutOfRange is returned when a card index does not refer to a
	// card in the working set.
	ErrIndexOutOfRange = errors.New("card index out of range")

	// ErrUnknownField is returned when a field name is neither "question"
	// nor "answer".
	ErrUnknownField = errors.New("unknown card field")

	// ErrWorkingSetEmpty is returned when saving an empty working set.
	ErrWorkingSetEmpty = errors.New("working set is empty")
)

// Card field names accepted by UpdateCard.
const (
	FieldQuestion = "question"
	FieldAnswer   = "answer"
)

// IncompleteCardsError reports how many cards in the working set are missing
// a question or an answer at save time.
type IncompleteCardsError struct {
	Count int
}

func (e *IncompleteCardsError) Error() string {
	return fmt.Sprintf("%d incomplete card(s) in working set", e.Count)
}

// View is a read-only snapshot of the editor state.
type View struct {
	Cards   []domain.Card `json:"cards"`
	Editing bool          `json:"editing"`
	Name    string        `json:"name"`
	Tags    string        `json:"tags"`
}

// Editor is the in-memory working set. It is safe for concurrent use; the
// application hosts a single instance for the single-user tool.
type Editor struct {
	mu      sync.Mutex
	cards   []domain.Card
	editing *domain.Set // set being edited, nil in create mode
}

// New returns an empty editor in create mode.
func New() *Editor {
	return &Editor{}
}

// AddCards appends the given cards to the working set, skipping any card
// that is incomplete or that structurally duplicates a card already present.
// Surviving cards keep their input order; existing cards are never reordered
// or removed. Calling AddCards twice with the same input is a no-op the
// second time.
func (e *Editor) AddCards(cards []domain.Card) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, card := range cards {
		if !card.Complete() {
			continue
		}
		if e.contains(card) {
			continue
		}
		e.cards = append(e.cards, card)
	}
}

// contains reports whether the working set already holds a structurally
// equal card. Callers must hold e.mu.
func (e *Editor) contains(card domain.Card) bool {
	for _, c := range e.cards {
		if c.Equal(card) {
			return true
		}
	}
	return false
}

// AddBlankCard appends an empty card for manual entry.
func (e *Editor) AddBlankCard() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cards = append(e.cards, domain.Card{})
}

// UpdateCard replaces the named field of the card at index.
// Returns ErrIndexOutOfRange or ErrUnknownField on bad input.
func (e *Editor) UpdateCard(index int, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.cards) {
		return ErrIndexOutOfRange
	}

	switch field {
	case FieldQuestion:
		e.cards[index].Question = value
	case FieldAnswer:
		e.cards[index].Answer = value
	default:
		return ErrUnknownField
	}
	return nil
}

// DeleteCard removes the card at index, shifting subsequent cards down.
func (e *Editor) DeleteCard(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index < 0 || index >= len(e.cards) {
		return ErrIndexOutOfRange
	}
	e.cards = append(e.cards[:index], e.cards[index+1:]...)
	return nil
}

// BeginEdit loads an existing set into the working set and switches the
// editor to edit mode. Any in-progress working set is replaced.
func (e *Editor) BeginEdit(set domain.Set) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cards = append([]domain.Card(nil), set.Cards...)
	e.editing = &set
}

// Editing reports whether the editor is in edit mode and, if so, which set.
func (e *Editor) Editing() (domain.Set, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.editing == nil {
		return domain.Set{}, false
	}
	return *e.editing, true
}

// BuildSet validates the working set against the given name and raw tags
// text and produces the set to persist. In create mode the set gets a fresh
// ID and creation timestamp; in edit mode the edited set's ID and original
// Created are preserved. The editor state is NOT cleared: callers persist
// the returned set first and then call Reset, so a failed write does not
// lose the working set.
func (e *Editor) BuildSet(name, tagsText string) (*domain.Set, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrSetNameEmpty
	}
	if len(e.cards) == 0 {
		return nil, ErrWorkingSetEmpty
	}

	incomplete := 0
	for _, c := range e.cards {
		if !c.Complete() {
			incomplete++
		}
	}
	if incomplete > 0 {
		return nil, &IncompleteCardsError{Count: incomplete}
	}

	cards := append([]domain.Card(nil), e.cards...)
	tags := ParseTags(tagsText)

	if e.editing != nil {
		set := &domain.Set{
			ID:      e.editing.ID,
			Name:    strings.TrimSpace(name),
			Tags:    tags,
			Cards:   cards,
			Created: e.editing.Created,
		}
		if err := set.Validate(); err != nil {
			return nil, err
		}
		return set, nil
	}

	return domain.NewSet(name, tags, cards)
}

// Reset discards the working set and editor fields and returns the editor
// to create mode. Used both after a successful save and on cancel.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cards = nil
	e.editing = nil
}

// Snapshot returns a copy of the current editor state for display. In edit
// mode the snapshot carries the edited set's name and its tags joined with
// ", " to prefill the editor fields.
func (e *Editor) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	view := View{
		Cards: append([]domain.Card{}, e.cards...),
	}
	if e.editing != nil {
		view.Editing = true
		view.Name = e.editing.Name
		view.Tags = strings.Join(e.editing.Tags, ", ")
	}
	return view
}

// ParseTags splits raw comma-separated tags text into a tag list: split on
// comma, trim each entry, drop empties. Duplicates are kept as given. The
// result is never nil so the persisted form is always a JSON array.
func ParseTags(text string) []string {
	tags := []string{}
	for _, t := range strings.Split(text, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
