package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cardforge/cardforge/internal/domain"
)

// CollectionStore defines the interface for card set persistence. The whole
// collection is an ordered sequence of sets; every mutation rewrites it in
// full, so there are no partial writes.
type CollectionStore interface {
	// List returns all sets in insertion order. A missing or unparsable
	// collection blob is treated as an empty collection, never an error.
	List(ctx context.Context) ([]domain.Set, error)

	// GetByID retrieves a set by its unique ID.
	// Returns ErrSetNotFound if the set does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Set, error)

	// Create appends a set to the collection.
	// Returns ErrDuplicate if a set with the same ID already exists.
	Create(ctx context.Context, set domain.Set) error

	// Update replaces the stored set with the same ID, keeping its position
	// in the collection and preserving its original Created timestamp.
	// Returns ErrSetNotFound if the set does not exist.
	Update(ctx context.Context, set domain.Set) error

	// Delete removes the set with the given ID.
	// Returns ErrSetNotFound if the set does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// KVCollectionStore implements CollectionStore over a KV gateway, storing
// the collection as a single JSON blob under CollectionKey. It is backend
// agnostic: any KV (sqlite file, in-memory) will do.
type KVCollectionStore struct {
	kv     KV
	logger *slog.Logger
}

// NewKVCollectionStore creates a CollectionStore over the given gateway.
// If logger is nil, the default logger is used.
func NewKVCollectionStore(kv KV, logger *slog.Logger) *KVCollectionStore {
	if kv == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("kv cannot be nil for KVCollectionStore")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &KVCollectionStore{
		kv:     kv,
		logger: logger.With(slog.String("component", "collection_store")),
	}
}

// Ensure KVCollectionStore implements the CollectionStore interface.
var _ CollectionStore = (*KVCollectionStore)(nil)

// load reads and deserializes the full collection. A missing key yields an
// empty collection; an unparsable blob is logged and also treated as empty
// so a corrupted store never takes the application down.
func (s *KVCollectionStore) load(ctx context.Context) ([]domain.Set, error) {
	blob, err := s.kv.Get(ctx, CollectionKey)
	if err != nil {
		if IsNotFoundError(err) {
			return []domain.Set{}, nil
		}
		return nil, NewStoreError("collection", "read", "gateway read failed", err)
	}

	var sets []domain.Set
	if err := json.Unmarshal(blob, &sets); err != nil {
		s.logger.Warn("collection blob is unparsable, treating as empty",
			slog.String("key", CollectionKey),
			slog.String("error", err.Error()))
		return []domain.Set{}, nil
	}
	if sets == nil {
		sets = []domain.Set{}
	}
	return sets, nil
}

// persist serializes the full collection and writes it back. Write failures
// surface to the caller instead of being dropped.
func (s *KVCollectionStore) persist(ctx context.Context, sets []domain.Set) error {
	blob, err := json.Marshal(sets)
	if err != nil {
		return NewStoreError("collection", "write", "serialization failed", err)
	}
	if err := s.kv.Put(ctx, CollectionKey, blob); err != nil {
		return NewStoreError("collection", "write", "gateway write failed", err)
	}
	return nil
}

// List implements CollectionStore.List.
func (s *KVCollectionStore) List(ctx context.Context) ([]domain.Set, error) {
	return s.load(ctx)
}

// GetByID implements CollectionStore.GetByID.
func (s *KVCollectionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Set, error) {
	sets, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sets {
		if sets[i].ID == id {
			set := sets[i]
			return &set, nil
		}
	}
	return nil, ErrSetNotFound
}

// Create implements CollectionStore.Create.
func (s *KVCollectionStore) Create(ctx context.Context, set domain.Set) error {
	if set.ID == uuid.Nil {
		return domain.ErrSetIDEmpty
	}

	sets, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range sets {
		if sets[i].ID == set.ID {
			return ErrDuplicate
		}
	}

	sets = append(sets, set)
	return s.persist(ctx, sets)
}

// Update implements CollectionStore.Update. The stored Created timestamp
// wins over whatever the caller passes in: creation instants are immutable.
func (s *KVCollectionStore) Update(ctx context.Context, set domain.Set) error {
	if set.ID == uuid.Nil {
		return domain.ErrSetIDEmpty
	}

	sets, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range sets {
		if sets[i].ID == set.ID {
			set.Created = sets[i].Created
			sets[i] = set
			return s.persist(ctx, sets)
		}
	}
	return ErrSetNotFound
}

// Delete implements CollectionStore.Delete.
func (s *KVCollectionStore) Delete(ctx context.Context, id uuid.UUID) error {
	sets, err := s.load(ctx)
	if err != nil {
		return err
	}
	for i := range sets {
		if sets[i].ID == id {
			sets = append(sets[:i], sets[i+1:]...)
			return s.persist(ctx, sets)
		}
	}
	return ErrSetNotFound
}
