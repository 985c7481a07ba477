// Package ui implements the read-only terminal outline browser. It never
// mutates the decoded document or touches the file: fold toggling is a
// view-layer overlay on top of the immutable model.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"otlview/internal/otl"
	"otlview/internal/outfmt"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	foldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	markedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// browserModel is the Bubble Tea model for the outline browser.
type browserModel struct {
	title    string
	doc      *otl.Document
	enc      outfmt.Encoding
	vp       viewport.Model
	ready    bool
	width    int
	selected int // index into visible
	// folded overlays the file's own open/closed state; the document
	// itself stays untouched.
	folded    map[int]bool
	showNotes bool
	visible   []int // headline indices currently visible
}

// NewBrowserModel returns a Bubble Tea model that browses a decoded outline.
func NewBrowserModel(title string, doc *otl.Document, enc outfmt.Encoding) tea.Model {
	m := &browserModel{
		title:     title,
		doc:       doc,
		enc:       enc,
		folded:    make(map[int]bool),
		showNotes: true,
		width:     80,
	}
	for i := range doc.Headlines {
		if !doc.Headlines[i].Open {
			m.folded[i] = true
		}
	}
	m.rebuildVisible()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
		case "home", "g":
			m.selected = 0
		case "end", "G":
			m.selected = len(m.visible) - 1
		case " ", "enter":
			m.toggleFold()
		case "n":
			m.showNotes = !m.showNotes
		}
		m.syncViewport()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		m.syncViewport()
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *browserModel) View() string {
	if !m.ready {
		return "loading…"
	}
	header := titleStyle.Render(m.title) +
		helpStyle.Render(fmt.Sprintf("  %d headlines", len(m.doc.Headlines))) + "\n\n"
	footer := helpStyle.Render("↑/↓ move · space fold · n notes · q quit")
	return header + m.vp.View() + "\n" + footer
}

// toggleFold flips the fold overlay of the selected headline when it has
// descendants.
func (m *browserModel) toggleFold() {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return
	}
	idx := m.visible[m.selected]
	if m.doc.SubtreeEnd(idx) == idx+1 {
		return // leaf
	}
	m.folded[idx] = !m.folded[idx]
	m.rebuildVisible()
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
}

// rebuildVisible recomputes which headlines show given the fold overlay.
func (m *browserModel) rebuildVisible() {
	m.visible = m.visible[:0]
	skipDeeper := -1 // hide everything deeper than this level, -1 disabled
	for i := range m.doc.Headlines {
		lvl := m.doc.Headlines[i].Level
		if skipDeeper >= 0 {
			if lvl > skipDeeper {
				continue
			}
			skipDeeper = -1
		}
		m.visible = append(m.visible, i)
		if m.folded[i] {
			skipDeeper = lvl
		}
	}
}

// syncViewport re-renders the visible lines and keeps the selection on screen.
func (m *browserModel) syncViewport() {
	if !m.ready {
		return
	}
	var sb strings.Builder
	for vi, idx := range m.visible {
		line := m.renderHeadline(idx)
		if vi == m.selected {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		if m.showNotes {
			h := &m.doc.Headlines[idx]
			if len(h.Note) > 0 {
				indent := strings.Repeat("  ", h.Level+1)
				for _, nl := range strings.Split(strings.TrimSuffix(
					strings.ReplaceAll(outfmt.DecodeText(h.Note, m.enc), "\r\n", "\n"), "\n"), "\n") {
					sb.WriteString(noteStyle.Render(indent + "> " + nl))
					sb.WriteByte('\n')
				}
			}
		}
	}
	m.vp.SetContent(sb.String())

	if m.selected < m.vp.YOffset {
		m.vp.SetYOffset(m.selected)
	} else if m.selected >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.selected - m.vp.Height + 1)
	}
}

func (m *browserModel) renderHeadline(idx int) string {
	h := &m.doc.Headlines[idx]
	indent := strings.Repeat("  ", h.Level)

	fold := "   "
	if m.doc.SubtreeEnd(idx) > idx+1 {
		if m.folded[idx] {
			fold = foldStyle.Render("[+]")
		} else {
			fold = foldStyle.Render("[-]")
		}
	}
	mark := " "
	if h.Marked {
		mark = markedStyle.Render("*")
	}

	text := outfmt.DecodeText(h.Text, m.enc)
	avail := m.width - runewidth.StringWidth(indent) - 6
	if avail > 0 {
		text = runewidth.Truncate(text, avail, "…")
	}
	return indent + fold + mark + " " + text
}
