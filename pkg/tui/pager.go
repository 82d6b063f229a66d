package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/uikit/internal/pagination"
)

// PageChangedMsg reports a page change made through the pager.
type PageChangedMsg struct {
	Page int
}

// PagerModel is a Bubble Tea model for a pagination.Paginator.
type PagerModel struct {
	p      *pagination.Paginator
	elems  []pagination.Element
	cursor int // index into elems, -1 when no link is focused
	err    error
}

func NewPagerModel(p *pagination.Paginator) PagerModel {
	m := PagerModel{p: p, cursor: -1}
	m.refresh()
	return m
}

func (m *PagerModel) refresh() {
	m.elems, m.err = m.p.Elements()
	if m.cursor >= len(m.elems) {
		m.cursor = -1
	}
}

// Paginator returns the wrapped paginator.
func (m PagerModel) Paginator() *pagination.Paginator {
	return m.p
}

// Err returns the validation error from the last refresh, if any.
func (m PagerModel) Err() error {
	return m.err
}

func (m PagerModel) Init() tea.Cmd {
	return nil
}

func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	before := m.p.Page()
	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		m.p.Previous()
	case "right", "l":
		m.p.Next()
	case "home", "g":
		m.p.GoTo(1)
	case "end", "G":
		m.p.GoTo(m.p.LastPage())
	case "tab":
		m.moveCursor(1)
	case "shift+tab":
		m.moveCursor(-1)
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.elems) {
			m.p.Change(m.elems[m.cursor])
		}
	}

	if page := m.p.Page(); page != before {
		m.cursor = -1
		m.refresh()
		return m, func() tea.Msg { return PageChangedMsg{Page: page} }
	}
	return m, nil
}

// moveCursor focuses the next page link in direction dir, skipping
// ellipses and the current page.
func (m *PagerModel) moveCursor(dir int) {
	n := len(m.elems)
	if n == 0 {
		return
	}
	i := m.cursor
	for range n {
		i = (i + dir + n) % n
		if e := m.elems[i]; !e.Ellipsis && !e.Active {
			m.cursor = i
			return
		}
	}
}

func (m PagerModel) View() string {
	if m.err != nil {
		return ErrorText.Render(m.err.Error())
	}
	if !m.p.HasPages() {
		return Summary(m.p)
	}
	return RenderPages(m.p, m.elems, m.cursor) + "\n" + Summary(m.p) + "\n" +
		MutedText.Render("←/→ page • tab/enter jump • q quit")
}

// RenderPages renders the previous/next controls around elems.
// focused is the index of a highlighted link, or -1.
func RenderPages(p *pagination.Paginator, elems []pagination.Element, focused int) string {
	var b strings.Builder

	if p.OnFirstPage() {
		b.WriteString(PageDisabled.Render("« Previous"))
	} else {
		b.WriteString(PageLink.Render("« Previous"))
	}

	for i, e := range elems {
		b.WriteString(" ")
		switch {
		case e.Ellipsis:
			b.WriteString(PageEllipsis.Render(e.String()))
		case e.Active:
			b.WriteString(PageActive.Render(e.String()))
		case i == focused:
			b.WriteString(PageFocused.Render(e.String()))
		default:
			b.WriteString(PageLink.Render(e.String()))
		}
	}

	b.WriteString(" ")
	if p.HasMorePages() {
		b.WriteString(PageLink.Render("Next »"))
	} else {
		b.WriteString(PageDisabled.Render("Next »"))
	}
	return b.String()
}

// Summary renders "Showing from to to of total results".
func Summary(p *pagination.Paginator) string {
	return MutedText.Render(fmt.Sprintf("Showing %d to %d of %d results", p.From(), p.To(), p.Total))
}
