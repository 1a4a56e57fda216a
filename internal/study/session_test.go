package study

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardforge/cardforge/internal/domain"
)

func studySet(t *testing.T, n int) domain.Set {
	t.Helper()
	cards := make([]domain.Card, n)
	for i := range cards {
		cards[i] = domain.Card{Question: "Q", Answer: "A"}
	}
	set, err := domain.NewSet("Study", nil, cards)
	require.NoError(t, err)
	return *set
}

// assertInvariant checks the session's core invariant: while reviewing with
// the card face down, the number of recorded results equals the index, and
// results never exceed the card count.
func assertInvariant(t *testing.T, s *Session) {
	t.Helper()
	state := s.Snapshot()
	assert.LessOrEqual(t, state.Assessed, state.Total)
	if !state.Flipped && !state.Completed {
		assert.Equal(t, state.Index, state.Assessed,
			"results must equal index while face down and not complete")
	}
}

func TestNewSessionRequiresCards(t *testing.T) {
	t.Parallel()

	_, err := NewSession(domain.Set{Name: "empty"})
	assert.ErrorIs(t, err, ErrNoCards)
}

func TestSessionInitialState(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 3))
	require.NoError(t, err)

	state := s.Snapshot()
	assert.Equal(t, 0, state.Index)
	assert.False(t, state.Flipped)
	assert.False(t, state.Completed)
	assert.Equal(t, 3, state.Total)
}

func TestFlipTransitions(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 2))
	require.NoError(t, err)

	require.NoError(t, s.Flip())
	assert.True(t, s.Snapshot().Flipped)
	assert.ErrorIs(t, s.Flip(), ErrAlreadyFlipped)
}

func TestAssessRequiresFlip(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 2))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Assess(domain.AssessmentEasy), ErrNotFlipped)

	require.NoError(t, s.Flip())
	assert.ErrorIs(t, s.Assess("bogus"), domain.ErrInvalidAssessment)

	require.NoError(t, s.Assess(domain.AssessmentEasy))
	state := s.Snapshot()
	assert.Equal(t, 1, state.Index)
	assert.False(t, state.Flipped)
}

func TestCompleteOnLastCard(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 2))
	require.NoError(t, err)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))
	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentHard))

	state := s.Snapshot()
	assert.True(t, state.Completed)
	// The index stays on the last card rather than running past the end.
	assert.Equal(t, 1, state.Index)

	assert.ErrorIs(t, s.Flip(), ErrSessionComplete)
	assert.ErrorIs(t, s.Assess(domain.AssessmentEasy), ErrSessionComplete)
	assert.ErrorIs(t, s.Previous(), ErrSessionComplete)
}

func TestPreviousUndoesAssessment(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 3))
	require.NoError(t, err)

	assert.ErrorIs(t, s.Previous(), ErrAtFirstCard)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentHard))
	assertInvariant(t, s)

	require.NoError(t, s.Previous())
	state := s.Snapshot()
	assert.Equal(t, 0, state.Index)
	assert.False(t, state.Flipped)
	assertInvariant(t, s)

	// Re-assess and finish: the undone result must not count twice.
	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))
	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))
	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))

	summary, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 100, summary.Mastery)
}

func TestPreviousClearsFlip(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 3))
	require.NoError(t, err)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))
	require.NoError(t, s.Flip())

	require.NoError(t, s.Previous())
	assert.False(t, s.Snapshot().Flipped)
	assertInvariant(t, s)
}

func TestRestart(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 2))
	require.NoError(t, err)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))
	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentEasy))
	require.True(t, s.Complete())

	s.Restart()
	state := s.Snapshot()
	assert.Equal(t, 0, state.Index)
	assert.False(t, state.Flipped)
	assert.False(t, state.Completed)
	assertInvariant(t, s)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 4))
	require.NoError(t, err)

	_, err = s.Summarize()
	assert.ErrorIs(t, err, ErrSessionNotComplete)

	grades := []domain.Assessment{
		domain.AssessmentEasy,
		domain.AssessmentEasy,
		domain.AssessmentMedium,
		domain.AssessmentHard,
	}
	for _, g := range grades {
		require.NoError(t, s.Flip())
		require.NoError(t, s.Assess(g))
	}

	summary, err := s.Summarize()
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Total)
	require.Len(t, summary.Labels, 3)

	assert.Equal(t, domain.AssessmentEasy, summary.Labels[0].Label)
	assert.Equal(t, 2, summary.Labels[0].Count)
	assert.Equal(t, 50, summary.Labels[0].Percent)

	assert.Equal(t, domain.AssessmentMedium, summary.Labels[1].Label)
	assert.Equal(t, 1, summary.Labels[1].Count)
	assert.Equal(t, 25, summary.Labels[1].Percent)

	assert.Equal(t, domain.AssessmentHard, summary.Labels[2].Label)
	assert.Equal(t, 1, summary.Labels[2].Count)
	assert.Equal(t, 25, summary.Labels[2].Percent)

	// round(100 × (2 + 0.5×1) / 4) = round(62.5) = 63
	assert.Equal(t, 63, summary.Mastery)
}

func TestMasteryAllHard(t *testing.T) {
	t.Parallel()

	s, err := NewSession(studySet(t, 1))
	require.NoError(t, err)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Assess(domain.AssessmentHard))

	summary, err := s.Summarize()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Mastery)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	set := studySet(t, 1)

	id, session, err := r.Start(set)
	require.NoError(t, err)
	require.NotNil(t, session)

	got, err := r.Get(id)
	require.NoError(t, err)
	assert.Same(t, session, got)

	r.Remove(id)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Removing twice is a no-op.
	r.Remove(id)

	_, _, err = r.Start(domain.Set{Name: "empty"})
	assert.ErrorIs(t, err, ErrNoCards)
}
