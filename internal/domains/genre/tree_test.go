package genre

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeGenre(name string, parent *Genre) Genre {
	g := Genre{ID: uuid.New(), Name: name, Level: 1}
	if parent != nil {
		id := parent.ID
		g.ParentID = &id
		g.Level = parent.Level + 1
	}
	return g
}

// sampleForest builds
//
//	Fiction
//	  Fantasy
//	  Sci-Fi
//	    Cyberpunk
//	Technology
func sampleForest() ([]Genre, map[string]Genre) {
	fiction := makeGenre("Fiction", nil)
	fantasy := makeGenre("Fantasy", &fiction)
	scifi := makeGenre("Sci-Fi", &fiction)
	cyberpunk := makeGenre("Cyberpunk", &scifi)
	technology := makeGenre("Technology", nil)

	// Deliberately unsorted input.
	genres := []Genre{technology, cyberpunk, scifi, fiction, fantasy}
	byName := map[string]Genre{
		"Fiction": fiction, "Fantasy": fantasy, "Sci-Fi": scifi,
		"Cyberpunk": cyberpunk, "Technology": technology,
	}
	return genres, byName
}

func TestBuildForest(t *testing.T) {
	genres, byName := sampleForest()

	forest := BuildForest(genres)
	require.Len(t, forest, 2)

	// Roots sorted by name.
	assert.Equal(t, "Fiction", forest[0].Name)
	assert.Equal(t, "Technology", forest[1].Name)
	assert.Empty(t, forest[1].Children)

	fiction := forest[0]
	require.Len(t, fiction.Children, 2)
	assert.Equal(t, "Fantasy", fiction.Children[0].Name)
	assert.Equal(t, "Sci-Fi", fiction.Children[1].Name)

	scifi := fiction.Children[1]
	require.Len(t, scifi.Children, 1)
	assert.Equal(t, byName["Cyberpunk"].ID, scifi.Children[0].ID)
	assert.Empty(t, scifi.Children[0].Children)
}

func TestMaterialize(t *testing.T) {
	genres, _ := sampleForest()

	entries := Materialize(genres)
	require.Len(t, entries, 5)

	names := make([]string, len(entries))
	paths := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
		paths[i] = e.DisplayPath
	}

	// Depth-first pre-order, siblings by name ascending.
	assert.Equal(t, []string{"Fiction", "Fantasy", "Sci-Fi", "Cyberpunk", "Technology"}, names)
	assert.Equal(t, []string{
		"Fiction",
		"Fiction / Fantasy",
		"Fiction / Sci-Fi",
		"Fiction / Sci-Fi / Cyberpunk",
		"Technology",
	}, paths)
}

func TestMaterializeEmpty(t *testing.T) {
	entries := Materialize(nil)
	assert.Empty(t, entries)
}

func TestIsDescendant(t *testing.T) {
	genres, byName := sampleForest()

	fiction := byName["Fiction"].ID
	scifi := byName["Sci-Fi"].ID
	cyberpunk := byName["Cyberpunk"].ID
	technology := byName["Technology"].ID

	assert.True(t, IsDescendant(genres, fiction, cyberpunk))
	assert.True(t, IsDescendant(genres, scifi, cyberpunk))
	assert.True(t, IsDescendant(genres, fiction, fiction), "a node is in its own subtree")

	assert.False(t, IsDescendant(genres, cyberpunk, fiction))
	assert.False(t, IsDescendant(genres, technology, cyberpunk))
}

func TestIsDescendantTerminatesOnCorruptData(t *testing.T) {
	// Two nodes pointing at each other must not loop forever.
	a := Genre{ID: uuid.New(), Name: "A", Level: 1}
	b := Genre{ID: uuid.New(), Name: "B", Level: 2}
	a.ParentID = &b.ID
	b.ParentID = &a.ID

	assert.False(t, IsDescendant([]Genre{a, b}, uuid.New(), a.ID))
}

func TestSubtreeLevels(t *testing.T) {
	genres, byName := sampleForest()

	// Reparenting Sci-Fi under Technology: subtree levels recompute from
	// the new root level.
	levels := SubtreeLevels(genres, byName["Sci-Fi"].ID, 2)
	assert.Equal(t, map[uuid.UUID]int{
		byName["Sci-Fi"].ID:    2,
		byName["Cyberpunk"].ID: 3,
	}, levels)

	// Promoting Sci-Fi to a root shifts the whole branch up.
	levels = SubtreeLevels(genres, byName["Sci-Fi"].ID, 1)
	assert.Equal(t, 1, levels[byName["Sci-Fi"].ID])
	assert.Equal(t, 2, levels[byName["Cyberpunk"].ID])
}

func TestSubtreeDepth(t *testing.T) {
	genres, byName := sampleForest()

	assert.Equal(t, 3, SubtreeDepth(genres, byName["Fiction"].ID))
	assert.Equal(t, 2, SubtreeDepth(genres, byName["Sci-Fi"].ID))
	assert.Equal(t, 1, SubtreeDepth(genres, byName["Cyberpunk"].ID))
	assert.Equal(t, 1, SubtreeDepth(genres, byName["Technology"].ID))
}
