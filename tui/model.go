package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OnlyF0uR/blackscript/editor"
)

var lastID atomic.Int64

// Model is a Bubble Tea component that hosts an editor.Editor in a
// terminal.
//
// The editor owns text, cursor and scrolling; Model translates terminal
// messages into editor intents and draws the editor's visual rows.
type Model struct {
	cfg Config
	ed  *editor.Editor
	id  int64

	focused bool
	width   int
	height  int

	viewport viewport.Model

	lastToken editor.SnapshotToken
	rendered  bool
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		ed:       editor.New(cfg.Editor),
		id:       lastID.Add(1),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.viewport.MouseWheelEnabled = false
	m.sync()
	return m
}

// Editor returns the hosted editor. Hosts may drive it directly; the next
// Update or View picks up the changes.
func (m Model) Editor() *editor.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return m.Blink() }

// SetSize sets the outer size of the component in cells.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height

	textHeight := height
	if m.cfg.ShowStatus && textHeight > 0 {
		textHeight--
	}
	m.viewport.Width = width
	m.viewport.Height = textHeight

	lh := m.ed.Metrics().LineHeight
	cw := m.ed.Metrics().CharWidth
	m.ed.Resize(float32(width)*cw, float32(textHeight)*lh)
	m.sync()
	return m
}

func (m Model) Width() int  { return m.width }
func (m Model) Height() int { return m.height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rendered = false
		m.sync()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rendered = false
		m.sync()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case BlinkMsg:
		m, cmd = m.updateBlink(msg)
	}
	m.sync()
	return m, cmd
}

func (m Model) View() string {
	if m.cfg.ShowStatus {
		return m.viewWithStatus()
	}
	return m.viewport.View()
}

// sync re-renders the viewport content when the editor's render state
// changed and mirrors the editor's scroll offset.
func (m *Model) sync() {
	token := m.ed.SnapshotToken()
	if !m.rendered || token != m.lastToken {
		m.viewport.SetContent(m.renderContent())
		m.lastToken = token
		m.rendered = true
	}
	m.viewport.SetYOffset(m.ed.ViewportState().TopVisualRow)
}
