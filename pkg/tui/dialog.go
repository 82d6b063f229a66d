package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/uikit/internal/dialog"
)

const (
	defaultDialogWidth = 50
	minDialogWidth     = 24
)

// StateMsg tells the model the controller changed. The model re-reads the
// controller rather than trusting the carried snapshot, since messages sent
// from different goroutines may arrive out of order.
type StateMsg dialog.Snapshot

// Forward returns a subscriber that sends every snapshot to p.
// Subscribe it after p is created and before p.Run.
func Forward(p *tea.Program) func(dialog.Snapshot) {
	return func(s dialog.Snapshot) {
		// Notifications can fire from inside Update, where a blocking Send
		// would deadlock the event loop.
		go p.Send(StateMsg(s))
	}
}

// DialogOption configures a DialogModel.
type DialogOption func(*DialogModel)

// WithMarkdown renders the dialog message as markdown.
func WithMarkdown(enabled bool) DialogOption {
	return func(m *DialogModel) { m.markdown = enabled }
}

// WithWidth sets the dialog width (default: 50).
func WithWidth(w int) DialogOption {
	return func(m *DialogModel) {
		if w >= minDialogWidth {
			m.boxWidth = w
		}
	}
}

// DialogModel is a Bubble Tea model for one dialog.Controller.
// It quits once the controller reports the dialog closed.
type DialogModel struct {
	ctrl     *dialog.Controller
	snap     dialog.Snapshot
	input    textinput.Model
	focus    int
	markdown bool
	boxWidth int

	// Rendered markdown message, redone only when the message or the
	// content width changes.
	renderMD      func(text string, width int) string
	rendered      string
	renderedMsg   string
	renderedWidth int

	width, height int
}

// NewDialogModel returns a model rendering ctrl. The dialog should already
// be shown.
func NewDialogModel(ctrl *dialog.Controller, opts ...DialogOption) DialogModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	m := DialogModel{
		ctrl:     ctrl,
		input:    ti,
		boxWidth: defaultDialogWidth,
		renderMD: renderMarkdown,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.sync(ctrl.Snapshot())
	return m
}

func (m DialogModel) Init() tea.Cmd {
	if m.snap.Prompt {
		return textinput.Blink
	}
	return nil
}

// sync adopts a snapshot, keeping focus and input in range.
func (m *DialogModel) sync(s dialog.Snapshot) {
	m.snap = s
	if m.focus >= len(s.Buttons) {
		m.focus = 0
	}
	if m.input.Value() != s.Input {
		m.input.SetValue(s.Input)
	}
	cw := m.contentWidth()
	m.input.Width = cw - 2
	if m.markdown && (s.Message != m.renderedMsg || cw != m.renderedWidth) {
		m.rendered = m.renderMD(s.Message, cw)
		m.renderedMsg, m.renderedWidth = s.Message, cw
	}
}

func (m DialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case StateMsg:
		m.sync(m.ctrl.Snapshot())
		return m, m.quitIfClosed()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sync(m.ctrl.Snapshot())
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.boxContains(msg.X, msg.Y) {
			m.ctrl.BackdropClick()
		}

	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}

	m.sync(m.ctrl.Snapshot())
	if quit := m.quitIfClosed(); quit != nil {
		return m, quit
	}
	return m, cmd
}

func (m *DialogModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.snap.Buttons)

	if msg.String() == "ctrl+w" && m.snap.ShowCloseButton {
		m.ctrl.Close(nil)
		return nil
	}

	switch msg.String() {
	case "ctrl+c":
		m.ctrl.Close(nil)
		return nil
	case "esc":
		m.ctrl.Escape()
		return nil
	case "enter":
		m.ctrl.Activate(m.focus)
		return nil
	case "tab":
		if n > 0 {
			m.focus = (m.focus + 1) % n
		}
		return nil
	case "shift+tab":
		if n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}
		return nil
	}

	if m.snap.Prompt {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.ctrl.SetInput(m.input.Value())
		return cmd
	}

	switch msg.String() {
	case "right", "l":
		if n > 0 {
			m.focus = (m.focus + 1) % n
		}
	case "left", "h":
		if n > 0 {
			m.focus = (m.focus - 1 + n) % n
		}
	}
	return nil
}

func (m DialogModel) quitIfClosed() tea.Cmd {
	if m.snap.State == dialog.StateClosed {
		return tea.Quit
	}
	return nil
}

// Focus returns the index of the focused button.
func (m DialogModel) Focus() int {
	return m.focus
}

func (m DialogModel) contentWidth() int {
	w := m.boxWidth
	if m.width > 0 && m.width-4 < w {
		w = max(m.width-4, minDialogWidth)
	}
	// border (2) + padding (4)
	return w - 6
}

func (m DialogModel) View() string {
	if !m.snap.IsOpen() {
		return ""
	}
	box := m.renderBox()
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m DialogModel) renderBox() string {
	cw := m.contentWidth()
	var parts []string

	if m.snap.Title != "" || m.snap.ShowCloseButton {
		title := ModalTitle.Render(m.snap.Title)
		if m.snap.ShowCloseButton {
			closeMark := MutedText.Render("✕")
			gap := max(cw-lipgloss.Width(title)-lipgloss.Width(closeMark), 1)
			title += strings.Repeat(" ", gap) + closeMark
		}
		parts = append(parts, title)
	}

	if m.snap.Message != "" {
		if m.markdown {
			parts = append(parts, m.rendered)
		} else {
			parts = append(parts, Body.Width(cw).Render(m.snap.Message))
		}
	}

	if m.snap.Prompt {
		style := InputNormal
		if m.snap.InputInvalid {
			style = InputInvalid
		}
		parts = append(parts, style.Width(cw-2).Render(m.input.View()))
		if m.snap.InputInvalid {
			parts = append(parts, ErrorText.Render("A value is required."))
		}
	}

	if len(m.snap.Buttons) > 0 {
		btns := make([]string, len(m.snap.Buttons))
		for i, b := range m.snap.Buttons {
			btns[i] = buttonStyle(b, i == m.focus).Render(b.Label)
		}
		row := strings.Join(btns, " ")
		parts = append(parts, "", ansi.Truncate(row, cw, "…"))
	}

	return ModalBox.Width(cw + 4).Render(strings.Join(parts, "\n"))
}

// boxContains reports whether screen cell (x, y) falls inside the dialog
// box. The box is measured by rendering it, the same way View places it.
func (m DialogModel) boxContains(x, y int) bool {
	if m.width == 0 || m.height == 0 {
		return true
	}
	box := m.renderBox()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	left := (m.width - bw) / 2
	top := (m.height - bh) / 2
	return x >= left && x < left+bw && y >= top && y < top+bh
}
