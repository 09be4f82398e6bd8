package domain

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }
func overThree(n int) bool { return n > 3 }

func TestCursor_IterateWithoutFilter(t *testing.T) {
	c := NewCursor([]int{3, 1, 2})

	assert.Equal(t, []int{3, 1, 2}, c.Collect())
	// Unfiltered iteration is repeatable.
	assert.Equal(t, []int{3, 1, 2}, c.Collect())
	assert.Equal(t, 3, c.Len())
}

func TestCursor_Filter(t *testing.T) {
	c := NewCursor([]int{1, 2, 3, 4, 5, 6})

	got := c.Filter(isEven).Collect()
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestCursor_FilterLastCallWins(t *testing.T) {
	c := NewCursor([]int{1, 2, 3, 4, 5, 6})

	c.Filter(isEven)
	c.Filter(overThree)
	got := c.Collect()

	assert.Equal(t, []int{4, 5, 6}, got)
	// Not the intersection of both predicates.
	assert.NotEqual(t, []int{4, 6}, got)
}

func TestCursor_FilteredIterationIsSinglePass(t *testing.T) {
	c := NewCursor([]int{1, 2, 3, 4})
	c.Filter(isEven)

	assert.Equal(t, []int{2, 4}, c.Collect())
	assert.Empty(t, c.Collect())

	c.Filter(isEven)
	assert.Equal(t, []int{2, 4}, c.Collect())
}

func TestCursor_PartialIterationResumes(t *testing.T) {
	c := NewCursor([]int{1, 2, 3, 4, 5})
	c.Filter(func(int) bool { return true })

	for v := range c.All() {
		assert.Equal(t, 1, v)
		break
	}
	assert.Equal(t, []int{2, 3, 4, 5}, c.Collect())
}

func TestCursor_Sort(t *testing.T) {
	c := NewCursor([]int{3, 1, 2})

	c.Sort(cmp.Compare[int], false)
	assert.Equal(t, []int{1, 2, 3}, c.Collect())

	c.Sort(cmp.Compare[int], true)
	assert.Equal(t, []int{3, 2, 1}, c.Collect())
}

func TestCursor_SortAfterFilterReordersPendingIteration(t *testing.T) {
	c := NewCursor([]int{6, 1, 4, 3, 2})
	c.Filter(isEven)
	c.Sort(cmp.Compare[int], false)

	assert.Equal(t, []int{2, 4, 6}, c.Collect())
}

func TestCursor_SortIsStable(t *testing.T) {
	type pair struct {
		key  int
		name string
	}
	c := NewCursor([]pair{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}})

	SortBy(c, func(p pair) int { return p.key }, false)
	assert.Equal(t, []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, c.Collect())

	SortBy(c, func(p pair) int { return p.key }, true)
	assert.Equal(t, []pair{{2, "a"}, {2, "c"}, {1, "b"}, {1, "d"}}, c.Collect())
}

func TestCursor_First(t *testing.T) {
	c := NewCursor([]string{"a", "b"})

	first, ok := c.Filter(func(s string) bool { return s == "b" }).First()
	require.True(t, ok)
	assert.Equal(t, "b", first)

	_, ok = NewCursor([]string{}).First()
	assert.False(t, ok)
}
