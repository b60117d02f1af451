// Package shop is the interactive catalog browser. Its Model turns key,
// mouse and resize input into browse events and renders the frames the
// browse.Screen returns.
package shop

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/theirongolddev/shelf/internal/browse"
	"github.com/theirongolddev/shelf/internal/catalog"
	"github.com/theirongolddev/shelf/internal/config"
	"github.com/theirongolddev/shelf/internal/tui/components"
	"github.com/theirongolddev/shelf/internal/tui/icons"
	"github.com/theirongolddev/shelf/internal/tui/layout"
	"github.com/theirongolddev/shelf/internal/tui/theme"
)

// ReloadMsg is emitted when the config file changes. It swaps presentation
// settings only; the selection and the catalog are kept.
type ReloadMsg struct {
	Config *config.Config
}

// copiedMsg reports the result of copying a product to the clipboard.
type copiedMsg struct {
	name string
	err  error
}

// writeClipboard is a variable so tests can stub the system clipboard.
var writeClipboard = clipboard.WriteAll

func copyProduct(p catalog.Product) tea.Cmd {
	return func() tea.Msg {
		text := fmt.Sprintf("%s\t%s\n%s\n", p.Name, p.Price, p.Description)
		return copiedMsg{name: p.Name, err: writeClipboard(text)}
	}
}

// Options configures a Model.
type Options struct {
	Config *config.Config // nil uses config.Default()
	Logger *zap.Logger    // nil discards logs
}

// Model is the Bubble Tea model for the browser.
type Model struct {
	screen *browse.Screen
	frame  browse.Frame

	// List cursor and first visible row. The cursor is presentation only;
	// it never changes the selection by itself.
	cursor int
	offset int

	width  int
	height int

	// Orientation policy
	pin        browse.Orientation
	cellAspect float64

	markdown bool
	mouse    bool

	detail viewport.Model

	showHelp bool
	quitting bool
	status   string // one-shot footer message, cleared by the next key

	theme  theme.Theme
	styles theme.Styles
	icons  icons.IconSet

	logger *zap.Logger
}

// New creates a browser over c. A nil catalog browses catalog.Default().
func New(c *catalog.Catalog, opts Options) Model {
	if c == nil {
		c = catalog.Default()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		width:  80,
		height: 24,
		detail: viewport.New(0, 0),
		logger: logger,
	}
	m.applyConfig(cfg)

	m.screen = browse.NewScreen(c, layout.Sense(m.pin, m.width, m.height, m.cellAspect))
	m.frame = m.screen.Frame()
	m.syncDetail()

	logger.Debug("browser created",
		zap.Int("products", c.Len()),
		zap.Stringer("orientation", m.screen.Orientation()),
		zap.String("theme", m.theme.Name),
	)
	return m
}

func (m *Model) applyConfig(cfg *config.Config) {
	m.theme = theme.FromName(cfg.Theme)
	m.styles = theme.NewStyles(m.theme)
	m.icons = icons.ForName(cfg.Icons)
	m.pin = cfg.PinnedOrientation()
	m.cellAspect = cfg.CellAspect
	m.markdown = cfg.RenderMarkdown
	m.mouse = cfg.Mouse
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sense()
		return m, nil

	case ReloadMsg:
		if msg.Config == nil {
			return m, nil
		}
		hadMouse := m.mouse
		m.applyConfig(msg.Config)
		m.logger.Info("config applied",
			zap.String("path", msg.Config.Path),
			zap.String("theme", m.theme.Name),
			zap.Stringer("pin", m.pin),
		)
		m.sense()

		var cmd tea.Cmd
		if m.mouse != hadMouse {
			if m.mouse {
				cmd = tea.EnableMouseCellMotion
			} else {
				cmd = tea.DisableMouse
			}
		}
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", zap.String("product", msg.name), zap.Error(msg.err))
			m.status = m.icons.Warning + " copy failed: " + msg.err.Error()
		} else {
			m.status = m.icons.Check + " Copied " + msg.name
		}
		return m, nil

	case tea.MouseMsg:
		if !m.mouse || m.showHelp {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		// Help overlay: Esc or ?/F1 closes it; otherwise ignore input.
		if m.showHelp {
			if msg.String() == "esc" || key.Matches(msg, keys.Help) {
				m.showHelp = false
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = true

	case key.Matches(msg, keys.Orientation):
		m.cyclePin()
		m.sense()

	case key.Matches(msg, keys.Back):
		m.back()

	case key.Matches(msg, keys.Copy):
		if p, ok := m.screen.Selection().Current(); ok {
			return m, copyProduct(p)
		}

	case key.Matches(msg, keys.Up):
		if m.frame.List != nil {
			m.moveCursor(-1)
		} else {
			m.detail.LineUp(1)
		}

	case key.Matches(msg, keys.Down):
		if m.frame.List != nil {
			m.moveCursor(1)
		} else {
			m.detail.LineDown(1)
		}

	case key.Matches(msg, keys.PageUp):
		m.detail.HalfViewUp()

	case key.Matches(msg, keys.PageDown):
		m.detail.HalfViewDown()

	case key.Matches(msg, keys.Activate):
		if m.frame.List != nil {
			m.activate(m.cursor)
		}

	default:
		if i := quickSelect(msg); i >= 0 {
			m.activate(i)
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Type {
	case tea.MouseWheelUp:
		if m.frame.List != nil && !m.overDetail(msg.X) {
			m.moveCursor(-1)
		} else {
			m.detail.LineUp(1)
		}
	case tea.MouseWheelDown:
		if m.frame.List != nil && !m.overDetail(msg.X) {
			m.moveCursor(1)
		} else {
			m.detail.LineDown(1)
		}
	case tea.MouseLeft:
		g := m.geometry()
		if m.backHit(g, msg.X, msg.Y) {
			m.back()
			return
		}
		if i, ok := m.listHit(g, msg.X, msg.Y); ok {
			m.activate(i)
		}
	}
}

// apply feeds ev to the screen and refreshes everything derived from the
// resulting frame.
func (m *Model) apply(ev browse.Event) {
	before := m.screen.Selection()
	m.frame = m.screen.Apply(ev)
	m.logger.Debug("screen event",
		zap.Stringer("event", ev),
		zap.Stringer("mode", m.frame.Mode),
		zap.Strings("panes", m.frame.Panes()),
		zap.Bool("back", m.frame.BackVisible),
	)

	m.syncDetail()
	if m.screen.Selection() != before {
		m.detail.GotoTop()
	}
	m.clampOffset()
}

// activate selects the product at catalog position i and moves the cursor
// onto it.
func (m *Model) activate(i int) {
	p, ok := m.screen.Catalog().At(i)
	if !ok {
		return
	}
	m.cursor = i
	m.apply(browse.Activate{Product: p})
}

// back clears the selection. Leaving a product also returns the list to
// its first row, so the list reads exactly as it did at startup.
func (m *Model) back() {
	if !m.screen.Selection().Empty() {
		m.cursor = 0
		m.offset = 0
	}
	m.apply(browse.Deselect{})
}

func (m *Model) moveCursor(delta int) {
	n := m.screen.Catalog().Len()
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	g := m.geometry()
	m.offset = components.Window(m.cursor, m.offset, g.listRows(), m.screen.Catalog().Len()).FirstVisible
}

// cyclePin steps the orientation pin: auto, landscape, portrait, auto.
func (m *Model) cyclePin() {
	switch m.pin {
	case browse.Landscape:
		m.pin = browse.Portrait
	case browse.Portrait:
		m.pin = browse.OrientationUnknown
	default:
		m.pin = browse.Landscape
	}
	m.logger.Debug("orientation pin changed", zap.Stringer("pin", m.pin))
}

// sense re-measures the orientation after a size or policy change and
// reports it to the screen when it differs.
func (m *Model) sense() {
	o := layout.Sense(m.pin, m.width, m.height, m.cellAspect)
	if o != m.screen.Orientation() {
		m.apply(browse.Rotate{Orientation: o})
		return
	}
	m.syncDetail()
	m.clampOffset()
}

// syncDetail sizes the detail viewport and refills it from the frame.
func (m *Model) syncDetail() {
	g := m.geometry()
	w := g.detailW - m.styles.Pane.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	h := g.detailRows()
	if h < 1 {
		h = 1
	}
	m.detail.Width = w
	m.detail.Height = h
	m.detail.SetContent(m.detailContent(w))
}

// Frame returns the frame currently on screen.
func (m Model) Frame() browse.Frame {
	return m.frame
}

// Selection returns the current selection.
func (m Model) Selection() browse.Selection {
	return m.screen.Selection()
}

// Orientation returns the orientation last reported to the screen.
func (m Model) Orientation() browse.Orientation {
	return m.screen.Orientation()
}

// Cursor returns the list cursor position.
func (m Model) Cursor() int {
	return m.cursor
}

// Mouse reports whether mouse input is enabled.
func (m Model) Mouse() bool {
	return m.mouse
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}
