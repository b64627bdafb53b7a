package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Document      string // the visible part of the slide document
	Indicators    []bool
	Current       int
	Count         int
	DeckTitle     string
	ShowDots      bool
	ShowProgress  bool
	HintVisible   bool
	StatusMessage string
	HelpModel     help.Model
	KeyMap        help.KeyMap
	ShowFullHelp  bool
	Ready         bool // prints the e2e readiness marker
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles { return r.styles }

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	bodyHeight := state.Height - r.FooterHeight(state)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := state.Document
	if state.ShowDots {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			body,
			r.RenderDots(state.Indicators, bodyHeight))
	}

	var out strings.Builder
	out.WriteString(body)
	out.WriteString("\n")
	out.WriteString(r.renderFooter(state))
	if state.Ready {
		out.WriteString("\n__READY__")
	}
	return out.String()
}

// FooterHeight returns how many rows the footer takes
func (r *Renderer) FooterHeight(state ViewState) int {
	if state.ShowFullHelp {
		return 1 + lipgloss.Height(state.HelpModel.FullHelpView(state.KeyMap.FullHelp()))
	}
	return 1
}

func (r *Renderer) renderFooter(state ViewState) string {
	left := ""
	if state.ShowProgress {
		left = r.styles.Progress.Render(fmt.Sprintf("%s  %d / %d", state.DeckTitle, state.Current+1, state.Count))
	}

	middle := ""
	switch {
	case state.StatusMessage != "":
		middle = r.styles.Status.Render(state.StatusMessage)
	case state.HintVisible:
		middle = r.styles.Hint.Render("↓ scroll to continue")
	}

	right := r.styles.Help.Render(state.HelpModel.ShortHelpView(state.KeyMap.ShortHelp()))

	line := joinSpread(state.Width, left, middle, right)
	if state.ShowFullHelp {
		return line + "\n" + state.HelpModel.FullHelpView(state.KeyMap.FullHelp())
	}
	return line
}

// joinSpread lays parts out left, centre and right on one line of width w.
// Parts that do not fit are dropped from the right.
func joinSpread(w int, left, middle, right string) string {
	parts := []string{left, middle, right}
	for len(parts) > 1 {
		used := 0
		for _, p := range parts {
			used += lipgloss.Width(p)
		}
		if used+len(parts)-1 <= w {
			break
		}
		parts = parts[:len(parts)-1]
	}

	used := 0
	for _, p := range parts {
		used += lipgloss.Width(p)
	}
	gaps := len(parts) - 1
	if gaps == 0 {
		return parts[0]
	}
	free := w - used
	if free < gaps {
		free = gaps
	}

	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i < gaps {
			pad := free / gaps
			if i == gaps-1 {
				pad = free - (free/gaps)*(gaps-1)
			}
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}
