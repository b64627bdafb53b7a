package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"slidedeck/internal/domain"
)

// pagerCommand shows text in the ov pager. It implements tea.ExecCommand so
// bubbletea releases the terminal while ov owns it.
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// notesContent formats a slide's speaker notes for the pager
func notesContent(index, total int, s domain.Slide) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Slide %d / %d: %s\n", index+1, total, s.Title)
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(s.Notes))
	b.WriteString("\n")
	return b.String()
}

// showNotes opens the pager for a slide, or returns nil if it has no notes
func showNotes(index, total int, s domain.Slide) tea.Cmd {
	if strings.TrimSpace(s.Notes) == "" {
		return nil
	}
	return tea.Exec(&pagerCommand{content: notesContent(index, total, s)}, func(err error) tea.Msg {
		return notesClosedMsg{err: err}
	})
}
