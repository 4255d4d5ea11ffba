package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/educross/educross/internal/learning/models"
)

func TestSeed_SpansAllThreeKinds(t *testing.T) {
	seed, err := Seed()
	require.NoError(t, err)
	require.Len(t, seed, 4)

	kinds := map[models.ActivityKind]bool{}
	for _, a := range seed {
		kinds[a.Kind] = true
		assert.NotEmpty(t, a.ID)
		assert.Greater(t, a.Points, 0)
	}
	assert.True(t, kinds[models.KindChoiceQuiz])
	assert.True(t, kinds[models.KindMatching])
	assert.True(t, kinds[models.KindCrossword])
}

func TestSeed_CrosswordAnswers(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	crossword, ok := cat.Get("cw1")
	require.True(t, ok)
	assert.Equal(t, "MARS", crossword.Words["The red planet"])
	assert.Len(t, crossword.Words, 3)
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	cat := NewWith(nil)

	a := cat.Create(models.Activity{Kind: models.KindChoiceQuiz, Title: "One", Points: 10})
	b := cat.Create(models.Activity{Kind: models.KindChoiceQuiz, Title: "Two", Points: 10})

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, cat.Len())
}

func TestDelete_RemovesFromListing(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	before := cat.Len()

	require.True(t, cat.Delete("mc1"))

	assert.Equal(t, before-1, cat.Len())
	_, ok := cat.Get("mc1")
	assert.False(t, ok)
	for _, a := range cat.List() {
		assert.NotEqual(t, "mc1", a.ID)
	}
}

func TestDelete_UnknownID(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	assert.False(t, cat.Delete("missing"))
	assert.Equal(t, 4, cat.Len())
}

// Catalog mutations are in-memory only: building a fresh catalog (a
// restart) restores the built-in set regardless of earlier edits.
func TestRestart_RestoresBuiltinSet(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	cat.Delete("mc1")
	cat.Create(models.Activity{Kind: models.KindCrossword, Title: "Extra", Points: 5})

	restarted, err := New()
	require.NoError(t, err)
	assert.Equal(t, 4, restarted.Len())
	_, ok := restarted.Get("mc1")
	assert.True(t, ok)
}

func TestList_ReturnsSnapshot(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	snapshot := cat.List()
	cat.Delete(snapshot[0].ID)

	// The earlier snapshot is unaffected by the mutation.
	assert.Len(t, snapshot, 4)
}
