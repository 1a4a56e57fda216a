// Package service implements the application operations over the card set
// collection: listing with search/filter/sort, saving, deleting,
// duplicating, and moving sets in and out as files.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/store"
)

// Service-level errors.
var (
	// ErrImportFormat is returned when an imported payload is not a valid
	// set file: not JSON at all, or missing the name or cards fields.
	ErrImportFormat = errors.New("invalid set file format")
)

// Sort keys accepted by Query.
const (
	SortRecent = "recent" // most recent by creation timestamp, descending
	SortName   = "name"   // name ascending, lexicographic
	SortCards  = "cards"  // card count descending
)

// Query narrows and orders a collection listing. The zero value returns
// everything, most recent first.
type Query struct {
	// Search matches case-insensitively by substring against the set name
	// or any of its tags.
	Search string

	// Tag, when non-empty, keeps only sets carrying exactly this tag.
	Tag string

	// Sort is one of SortRecent (default), SortName, SortCards.
	Sort string
}

// CollectionService coordinates the collection repository with the
// operations the editor, list, and study flows need.
type CollectionService struct {
	sets   store.CollectionStore
	logger *slog.Logger
}

// NewCollectionService creates a CollectionService.
// If logger is nil, the default logger is used.
func NewCollectionService(sets store.CollectionStore, logger *slog.Logger) *CollectionService {
	if sets == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("sets store cannot be nil for CollectionService")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectionService{
		sets:   sets,
		logger: logger.With(slog.String("component", "collection_service")),
	}
}

// List returns the sets matching the query, ordered by its sort key.
func (s *CollectionService) List(ctx context.Context, q Query) ([]domain.Set, error) {
	all, err := s.sets.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Set, 0, len(all))
	for _, set := range all {
		if !set.Matches(q.Search) {
			continue
		}
		if q.Tag != "" && !set.HasTag(q.Tag) {
			continue
		}
		filtered = append(filtered, set)
	}

	switch q.Sort {
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	case SortCards:
		sort.SliceStable(filtered, func(i, j int) bool {
			return len(filtered[i].Cards) > len(filtered[j].Cards)
		})
	default: // SortRecent
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Created > filtered[j].Created
		})
	}

	return filtered, nil
}

// Get returns one set by ID.
func (s *CollectionService) Get(ctx context.Context, id uuid.UUID) (*domain.Set, error) {
	return s.sets.GetByID(ctx, id)
}

// Create appends a new set to the collection.
func (s *CollectionService) Create(ctx context.Context, set domain.Set) error {
	if err := s.sets.Create(ctx, set); err != nil {
		return err
	}
	s.logger.Info("set created",
		slog.String("set_id", set.ID.String()),
		slog.String("name", set.Name),
		slog.Int("cards", len(set.Cards)))
	return nil
}

// Update replaces an existing set, preserving its creation timestamp.
func (s *CollectionService) Update(ctx context.Context, set domain.Set) error {
	if err := s.sets.Update(ctx, set); err != nil {
		return err
	}
	s.logger.Info("set updated",
		slog.String("set_id", set.ID.String()),
		slog.String("name", set.Name),
		slog.Int("cards", len(set.Cards)))
	return nil
}

// Delete removes a set from the collection. Confirmation is the caller's
// concern; once this runs the set is gone.
func (s *CollectionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.sets.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("set deleted", slog.String("set_id", id.String()))
	return nil
}

// Duplicate clones the set with the given ID under a decorated name with a
// fresh ID and creation timestamp, and appends the clone to the collection.
func (s *CollectionService) Duplicate(ctx context.Context, id uuid.UUID) (*domain.Set, error) {
	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dup := set.Clone()
	if err := s.sets.Create(ctx, *dup); err != nil {
		return nil, err
	}
	s.logger.Info("set duplicated",
		slog.String("source_id", id.String()),
		slog.String("set_id", dup.ID.String()))
	return dup, nil
}

// Tags returns the distinct tags across the whole collection, in first-seen
// order.
func (s *CollectionService) Tags(ctx context.Context) ([]string, error) {
	all, err := s.sets.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := []string{}
	for _, set := range all {
		for _, tag := range set.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ExportFilename derives the download filename for a set: whitespace in the
// name replaced with underscores, plus the ".json" extension.
func ExportFilename(set domain.Set) string {
	return whitespaceRe.ReplaceAllString(set.Name, "_") + ".json"
}

// Export serializes one set as pretty-printed JSON for download. The actual
// file write is the caller's concern.
func (s *CollectionService) Export(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	set, err := s.sets.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize set: %w", err)
	}
	return ExportFilename(*set), data, nil
}

// importPayload mirrors the set wire format with pointer fields so missing
// keys are distinguishable from empty values.
type importPayload struct {
	Name  *string        `json:"name"`
	Tags  []string       `json:"tags"`
	Cards *[]domain.Card `json:"cards"`
}

// Import deserializes a set file, checks its minimum shape (a name and a
// cards field must both be present), stamps a fresh ID and creation
// timestamp, and appends the set to the collection. Nothing is written when
// the shape check fails.
func (s *CollectionService) Import(ctx context.Context, data []byte) (*domain.Set, error) {
	var payload importPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFormat, err)
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" || payload.Cards == nil {
		return nil, ErrImportFormat
	}

	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}

	set := domain.Set{
		ID:      uuid.New(),
		Name:    *payload.Name,
		Tags:    tags,
		Cards:   *payload.Cards,
		Created: time.Now().UnixMilli(),
	}
	if err := s.sets.Create(ctx, set); err != nil {
		return nil, err
	}
	s.logger.Info("set imported",
		slog.String("set_id", set.ID.String()),
		slog.String("name", set.Name),
		slog.Int("cards", len(set.Cards)))
	return &set, nil
}
