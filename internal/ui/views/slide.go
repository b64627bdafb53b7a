package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"slidedeck/internal/domain"
	"slidedeck/internal/ui/animation"
)

// SlideFrame is the animation state a slide is rendered at
type SlideFrame struct {
	VisiblePoints  int
	MetricProgress float64
}

// RenderSlide renders one slide as lines, padded to at least minHeight rows
// and exactly width columns wide. Hidden points keep their rows so the slide
// height never depends on the animation frame.
func (r *Renderer) RenderSlide(s domain.Slide, frame SlideFrame, width, minHeight int) []string {
	st := r.styles
	inner := width - st.Slide.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(wordwrap.String(s.Title, inner)))
	b.WriteString("\n")
	if s.Subtitle != "" {
		b.WriteString(st.Subtitle.Render(wordwrap.String(s.Subtitle, inner)))
		b.WriteString("\n")
	}
	b.WriteString(st.Divider.Render(strings.Repeat("─", min(inner, 40))))
	b.WriteString("\n")

	for _, p := range s.Body {
		b.WriteString("\n")
		b.WriteString(st.Body.Render(wordwrap.String(p, inner)))
		b.WriteString("\n")
	}

	if len(s.Points) > 0 {
		b.WriteString("\n")
		for i, p := range s.Points {
			text := wordwrap.String(p, inner-2)
			if i >= frame.VisiblePoints {
				// blank rows of the same height
				b.WriteString(strings.Repeat("\n", strings.Count(text, "\n")+1))
				continue
			}
			lines := strings.Split(text, "\n")
			for j, line := range lines {
				prefix := "  "
				if j == 0 {
					prefix = st.Bullet.Render("▸ ")
				}
				b.WriteString(prefix + st.Point.Render(line) + "\n")
			}
		}
	}

	if len(s.Metrics) > 0 {
		boxes := make([]string, 0, len(s.Metrics))
		for _, m := range s.Metrics {
			boxes = append(boxes, st.MetricBox.Render(
				st.MetricNum.Render(animation.FormatMetric(m, frame.MetricProgress))+"\n"+
					st.MetricText.Render(m.Label)))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
		b.WriteString("\n")
	}

	content := st.Slide.Width(width).Render(strings.TrimRight(b.String(), "\n"))
	lines := strings.Split(content, "\n")
	for len(lines) < minHeight {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}
