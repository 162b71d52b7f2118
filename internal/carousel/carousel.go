// Package carousel tracks the scroll position of a horizontally scrolling
// strip of fixed-width cards.
package carousel

import "math"

// DefaultCardWidth is one card plus the gap that follows it, in pixels.
const DefaultCardWidth = 344

type Tracker struct {
	CardWidth float64
}

func NewTracker() Tracker {
	return Tracker{CardWidth: DefaultCardWidth}
}

// Position is a scroll measurement of the strip.
type Position struct {
	ScrollLeft  float64
	ScrollWidth float64
	ClientWidth float64
}

type State struct {
	CanScrollLeft  bool
	CanScrollRight bool
	CurrentPage    int
}

// Dot is one pagination control and the offset it scrolls to.
type Dot struct {
	Page   int
	Offset float64
	Active bool
}

func (t Tracker) width() float64 {
	if t.CardWidth <= 0 {
		return DefaultCardWidth
	}
	return t.CardWidth
}

func (t Tracker) State(p Position) State {
	// 1px slack absorbs subpixel rounding at the right edge.
	maxScroll := p.ScrollWidth - p.ClientWidth
	page := int(math.Round(p.ScrollLeft / t.width()))
	if page < 0 {
		page = 0
	}
	return State{
		CanScrollLeft:  p.ScrollLeft > 0,
		CanScrollRight: p.ScrollLeft < maxScroll-1,
		CurrentPage:    page,
	}
}

// ScrollTarget is the offset a click on the dot for page scrolls to.
func (t Tracker) ScrollTarget(page int) float64 {
	if page < 0 {
		page = 0
	}
	return float64(page) * t.width()
}

// Dots lists one dot per card, marking the current page active.
func (t Tracker) Dots(cards int, current int) []Dot {
	if cards <= 0 {
		return nil
	}
	dots := make([]Dot, cards)
	for i := range dots {
		dots[i] = Dot{Page: i, Offset: t.ScrollTarget(i), Active: i == current}
	}
	return dots
}
