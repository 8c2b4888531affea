package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	t.Parallel()

	chunks, rest := Chunk([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, chunks)
	assert.Equal(t, []int{7}, rest)

	chunks, rest = Chunk([]int{1, 2}, 0)
	assert.Nil(t, chunks)
	assert.Equal(t, []int{1, 2}, rest)
}

func TestSortedKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
