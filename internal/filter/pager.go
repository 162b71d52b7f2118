package filter

const (
	InitialVisible = 10
	LoadMoreStep   = 5
	// MaxLoads bounds the load-more count a pager can be restored from.
	MaxLoads = 200
)

// Pager tracks incremental reveal. Filter changes do not reset it.
type Pager struct {
	visible int
}

func NewPager() *Pager {
	return &Pager{visible: InitialVisible}
}

// PagerAfter returns a pager that has already seen loads "load more" actions,
// clamped to [0, MaxLoads].
func PagerAfter(loads int) *Pager {
	loads = max(0, min(loads, MaxLoads))
	return &Pager{visible: InitialVisible + loads*LoadMoreStep}
}

func (p *Pager) LoadMore() {
	p.visible += LoadMoreStep
}

func (p *Pager) Visible() int {
	return p.visible
}

// HasMore reports whether the "load more" control should be shown.
func (p *Pager) HasMore(total int) bool {
	return total > p.visible
}

// Page returns the first visible items of items.
func Page[T any](items []T, visible int) []T {
	if visible < 0 {
		visible = 0
	}
	if visible > len(items) {
		visible = len(items)
	}
	return items[:visible]
}
