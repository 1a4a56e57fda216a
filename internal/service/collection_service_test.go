package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/cardforge/internal/domain"
	"github.com/cardforge/cardforge/internal/store"
)

func newTestService(t *testing.T) *CollectionService {
	t.Helper()
	return NewCollectionService(store.NewKVCollectionStore(store.NewMemKV(), nil), nil)
}

// seedSet creates a set with a pinned creation timestamp so sort order is
// deterministic regardless of test execution speed.
func seedSet(t *testing.T, svc *CollectionService, name string, tags []string, cards []domain.Card, created int64) domain.Set {
	t.Helper()
	set, err := domain.NewSet(name, tags, cards)
	require.NoError(t, err)
	set.Created = created
	require.NoError(t, svc.Create(context.Background(), *set))
	return *set
}

func cards(n int) []domain.Card {
	out := make([]domain.Card, n)
	for i := range out {
		out[i] = domain.Card{Question: "Q", Answer: "A"}
	}
	return out
}

func TestListFilterAndSort(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	seedSet(t, svc, "Biology", []string{"science", "exam"}, cards(3), 100)
	seedSet(t, svc, "Algebra", []string{"math"}, cards(5), 300)
	seedSet(t, svc, "Chemistry", []string{"science"}, cards(1), 200)

	names := func(sets []domain.Set) []string {
		out := make([]string, len(sets))
		for i, s := range sets {
			out[i] = s.Name
		}
		return out
	}

	t.Run("default sort is most recent first", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Algebra", "Chemistry", "Biology"}, names(sets))
	})

	t.Run("sort by name", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{Sort: SortName})
		require.NoError(t, err)
		assert.Equal(t, []string{"Algebra", "Biology", "Chemistry"}, names(sets))
	})

	t.Run("sort by card count", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{Sort: SortCards})
		require.NoError(t, err)
		assert.Equal(t, []string{"Algebra", "Biology", "Chemistry"}, names(sets))
	})

	t.Run("search matches names case-insensitively", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{Search: "bio"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Biology"}, names(sets))
	})

	t.Run("search matches tags", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{Search: "MATH"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Algebra"}, names(sets))
	})

	t.Run("tag filter is exact", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{Tag: "science"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chemistry", "Biology"}, names(sets))

		sets, err = svc.List(ctx, Query{Tag: "sci"})
		require.NoError(t, err)
		assert.Empty(t, sets)
	})

	t.Run("search and tag combine", func(t *testing.T) {
		sets, err := svc.List(ctx, Query{Search: "chem", Tag: "science"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Chemistry"}, names(sets))
	})
}

func TestDuplicate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	original := seedSet(t, svc, "Biology", []string{"science"}, cards(2), 100)

	dup, err := svc.Duplicate(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Biology (Copy)", dup.Name)
	assert.NotEqual(t, original.ID, dup.ID)
	assert.NotEqual(t, original.Created, dup.Created)
	assert.Equal(t, original.Tags, dup.Tags)
	assert.Equal(t, original.Cards, dup.Cards)

	sets, err := svc.List(ctx, Query{Sort: SortName})
	require.NoError(t, err)
	assert.Len(t, sets, 2)

	_, err = svc.Duplicate(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrSetNotFound)
}

func TestTagsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	seedSet(t, svc, "One", []string{"b", "a"}, cards(1), 100)
	seedSet(t, svc, "Two", []string{"a", "c"}, cards(1), 200)

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, tags)
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"Biology", "Biology.json"},
		{"Cell Biology", "Cell_Biology.json"},
		{"a  b\tc", "a_b_c.json"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ExportFilename(domain.Set{Name: tc.name}))
	}
}

func TestExportGolden(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	set := domain.Set{
		ID:   uuid.MustParse("6f1a2b3c-4d5e-6f70-8190-a1b2c3d4e5f6"),
		Name: "Cell Biology",
		Tags: []string{"bio", "exam"},
		Cards: []domain.Card{
			{Question: "Mitochondria", Answer: "Powerhouse of the cell"},
			{Question: "Ribosome", Answer: "Protein synthesis"},
		},
		Created: 1700000000000,
	}
	require.NoError(t, svc.Create(ctx, set))

	filename, data, err := svc.Export(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cell_Biology.json", filename)

	g := goldie.New(t)
	g.Assert(t, "export_set", data)
}

func TestImportExportRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	original := seedSet(t, svc, "Biology", []string{"science"}, cards(2), 100)
	_, data, err := svc.Export(ctx, original.ID)
	require.NoError(t, err)

	imported, err := svc.Import(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, original.Name, imported.Name)
	assert.Equal(t, original.Tags, imported.Tags)
	assert.Equal(t, original.Cards, imported.Cards)
	assert.NotEqual(t, original.ID, imported.ID, "import must mint a fresh identity")
	assert.NotEqual(t, original.Created, imported.Created)
}

func TestImportFormatChecks(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{broken`},
		{"missing name", `{"cards": []}`},
		{"blank name", `{"name": "  ", "cards": []}`},
		{"missing cards", `{"name": "Bio"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Import(ctx, []byte(tc.data))
			assert.ErrorIs(t, err, ErrImportFormat)

			sets, listErr := svc.List(ctx, Query{})
			require.NoError(t, listErr)
			assert.Empty(t, sets, "a rejected import must not write anything")
		})
	}
}

func TestImportDefaults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	// Empty cards array and absent tags are both acceptable.
	set, err := svc.Import(ctx, []byte(`{"name": "Bio", "cards": []}`))
	require.NoError(t, err)
	assert.Equal(t, "Bio", set.Name)
	assert.Equal(t, []string{}, set.Tags)
	assert.Empty(t, set.Cards)

	// Foreign fields, including an id, are ignored.
	set, err = svc.Import(ctx, []byte(`{"id": "not-a-uuid", "name": "Chem", "cards": [], "extra": 1}`))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, set.ID)

	// The imported wire format stays a strict subset of the export format.
	var probe map[string]json.RawMessage
	_, data, err := svc.Export(ctx, set.ID)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &probe))
	for _, key := range []string{"id", "name", "tags", "cards", "created"} {
		assert.Contains(t, probe, key)
	}
}

func TestUpdateAndDeleteLoggingPaths(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	set := seedSet(t, svc, "Biology", nil, cards(1), 100)
	set.Name = strings.ToUpper(set.Name)
	require.NoError(t, svc.Update(ctx, set))

	got, err := svc.Get(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, "BIOLOGY", got.Name)

	require.NoError(t, svc.Delete(ctx, set.ID))
	_, err = svc.Get(ctx, set.ID)
	assert.ErrorIs(t, err, store.ErrSetNotFound)
}
