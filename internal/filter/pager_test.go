package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerStartsAtTenAndStepsByFive(t *testing.T) {
	p := NewPager()
	assert.Equal(t, 10, p.Visible())

	p.LoadMore()
	assert.Equal(t, 15, p.Visible())
	p.LoadMore()
	assert.Equal(t, 20, p.Visible())
}

func TestPagerHasMore(t *testing.T) {
	p := NewPager()
	assert.False(t, p.HasMore(9))
	assert.False(t, p.HasMore(10))
	assert.True(t, p.HasMore(11))

	p.LoadMore()
	assert.False(t, p.HasMore(11))
	assert.True(t, p.HasMore(16))
}

func TestPagerAfter(t *testing.T) {
	assert.Equal(t, 10, PagerAfter(0).Visible())
	assert.Equal(t, 25, PagerAfter(3).Visible())
	assert.Equal(t, 10, PagerAfter(-4).Visible())
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{1, 2, 3}, Page(items, 3))
	assert.Equal(t, items, Page(items, 10))
	assert.Empty(t, Page(items, -1))
	assert.Empty(t, Page([]int(nil), 10))
}

func TestPagerAfterClampsLargeCounts(t *testing.T) {
	want := InitialVisible + MaxLoads*LoadMoreStep
	assert.Equal(t, want, PagerAfter(MaxLoads+1).Visible())
	assert.Equal(t, want, PagerAfter(int(^uint(0)>>1)).Visible())
	assert.True(t, PagerAfter(int(^uint(0)>>1)).HasMore(want+1))
}
