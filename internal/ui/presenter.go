package ui

import (
	"strings"

	"slidedeck/internal/ui/views"
)

// ScrollSlideIntoView brings a slide's top edge to the top of the viewport
func (m *Model) ScrollSlideIntoView(index int) {
	top, _ := m.SlideBounds(index)
	target := top
	if limit := m.maxOffset(); target > limit {
		target = limit
	}

	if !m.config.Animation.SmoothScroll {
		m.scroller.Stop()
		m.viewport.SetYOffset(target)
		return
	}

	m.scroller.Start(m.viewport.YOffset, target)
	if m.scroller.Active() && !m.framing {
		m.framing = true
		m.pending = append(m.pending, scrollFrame())
	}
}

// SetIndicatorActive marks one navigation dot active
func (m *Model) SetIndicatorActive(index int) {
	if index >= 0 && index < m.deck.Len() {
		m.active = index
	}
}

// SetScrollHintVisibility shows or hides the scroll hint in the footer
func (m *Model) SetScrollHintVisibility(visible bool) {
	m.hintVisible = visible
}

// PlayEntranceAnimations starts a slide's entrance the first time it is shown
func (m *Model) PlayEntranceAnimations(index int) {
	s, ok := m.deck.Slide(index)
	if !ok || !m.entrances.Start(index, s, m.now()) {
		return
	}
	m.refreshContent()
	if !m.ticking {
		m.ticking = true
		m.pending = append(m.pending, entranceTick())
	}
}

// ScrollY returns the first document row in view
func (m *Model) ScrollY() int { return m.viewport.YOffset }

// ViewportHeight returns the number of document rows in view
func (m *Model) ViewportHeight() int { return m.viewport.Height }

// SlideBounds returns the document rows [top, bottom) of a slide
func (m *Model) SlideBounds(index int) (int, int) {
	if index < 0 || index+1 >= len(m.tops) {
		return 0, 0
	}
	return m.tops[index], m.tops[index+1]
}

func (m *Model) maxOffset() int {
	limit := m.viewport.TotalLineCount() - m.viewport.Height
	if limit < 0 {
		return 0
	}
	return limit
}

// relayout sizes the viewport and re-renders the document, keeping the
// current slide aligned to the top
func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	state := views.ViewState{
		HelpModel:    m.help,
		KeyMap:       m.input.KeyMap(),
		ShowFullHelp: m.showFullHelp,
	}

	width := m.width
	if m.config.UI.ShowNavDots {
		width -= views.DotsWidth
	}
	height := m.height - m.renderer.FooterHeight(state)
	if height < 1 {
		height = 1
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refreshContent()

	m.scroller.Stop()
	top, _ := m.SlideBounds(m.nav.Current())
	m.viewport.SetYOffset(top)
}

// refreshContent renders every slide at its current animation frame
func (m *Model) refreshContent() {
	if m.viewport.Width == 0 || m.viewport.Height == 0 {
		return
	}
	now := m.now()
	var lines []string
	tops := make([]int, 0, m.deck.Len()+1)

	for i, s := range m.deck.Slides() {
		tops = append(tops, len(lines))
		frame := views.SlideFrame{
			VisiblePoints:  m.entrances.VisiblePoints(i, now),
			MetricProgress: m.entrances.MetricProgress(i, now),
		}
		lines = append(lines, m.renderer.RenderSlide(s, frame, m.viewport.Width, m.viewport.Height)...)
	}
	tops = append(tops, len(lines))

	m.tops = tops
	m.viewport.SetContent(strings.Join(lines, "\n"))
}
