package collections_test

import (
	"testing"

	"bennypowers.dev/csstheme/internal/collections"
	"github.com/stretchr/testify/assert"
)

func TestNewSet(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		s := collections.NewSet[string]()
		assert.NotNil(t, s)
		assert.Empty(t, s)
	})

	t.Run("duplicate initial values", func(t *testing.T) {
		s := collections.NewSet("src/b.css", "src/a.css", "src/b.css")
		assert.Len(t, s, 2, "duplicates should be deduplicated")
		assert.True(t, s.Has("src/a.css"))
		assert.True(t, s.Has("src/b.css"))
		assert.False(t, s.Has("src/c.css"))
	})
}

func TestSetAdd(t *testing.T) {
	s := collections.NewSet[string]()
	s.Add("a")
	s.Add("b", "a")
	assert.Len(t, s, 2)
}

func TestSetSorted(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		assert.Empty(t, collections.NewSet[int]().Sorted())
	})

	t.Run("strings", func(t *testing.T) {
		s := collections.NewSet("index.html", "card.ts", "button.css")
		assert.Equal(t, []string{"button.css", "card.ts", "index.html"}, s.Sorted())
	})

	t.Run("ints", func(t *testing.T) {
		s := collections.NewSet(3, 1, 2, 1)
		assert.Equal(t, []int{1, 2, 3}, s.Sorted())
	})
}

func TestSetString(t *testing.T) {
	assert.Equal(t, "[]", collections.NewSet[string]().String())
	assert.Equal(t, "[a b c]", collections.NewSet("c", "a", "b").String())
}
