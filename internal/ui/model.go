package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"vlist/internal/bridge"
	"vlist/internal/config"
	"vlist/internal/domain"
	"vlist/internal/eventbus"
	"vlist/internal/source"
	"vlist/internal/ui/views"
	"vlist/internal/virtual"
)

const (
	chromeRows      = 3 // title, status, help
	wheelStep       = 3
	maxRenderPasses = 3
)

// Model is the list viewer
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	log    logrus.FieldLogger

	title string
	items []source.Item
	axis  domain.Axis

	vp       viewport.Model
	root     *bridge.Root
	anchor   *bridge.Anchor
	engine   *virtual.Engine[string]
	sched    *Scheduler
	renderer *views.ListRenderer
	styles   *views.Styles

	rng     domain.Range
	status  domain.ScrollStatus
	mode    domain.SizeMode
	dirty   bool
	hline   string // horizontal content line
	lead    string
	leadLen int

	width      int
	height     int
	keys       keyMap
	help       help.Model
	prompt     textinput.Model
	prompting  bool
	showStatus bool
	lastEvent  string
	err        error

	helpOps *HelpOps
}

// NewModel creates the viewer over items
func NewModel(bus eventbus.EventBus, cfg *config.Config, log logrus.FieldLogger, title string, items []source.Item) *Model {
	axis := cfg.List.Axis()
	if !axis.Valid() {
		axis = domain.AxisVertical
	}

	prompt := textinput.New()
	prompt.Prompt = ": "
	prompt.Placeholder = "index"
	prompt.CharLimit = 12

	m := &Model{
		bus:        bus,
		config:     cfg,
		log:        log,
		title:      title,
		items:      items,
		axis:       axis,
		vp:         viewport.New(0, 0),
		sched:      NewScheduler(),
		styles:     views.NewStyles(),
		keys:       newKeyMap(),
		help:       help.New(),
		prompt:     prompt,
		showStatus: cfg.UI.ShowStatus,
		helpOps:    NewHelpOps(),
	}
	m.renderer = views.NewListRenderer(m.styles, axis, cfg.UI.Wrap)
	m.lead, m.leadLen = m.renderer.Banner(title, len(items))

	m.root = bridge.NewRoot(&m.vp)
	m.anchor = bridge.NewAnchor(m.root, axis, m.leadLen)
	m.engine = virtual.New(virtual.Options[string]{
		Size:          cfg.List.Size,
		Keeps:         cfg.List.Keeps,
		Buffer:        cfg.List.Buffer,
		Wrapper:       m.anchor,
		Scroller:      m.root,
		Direction:     axis,
		UniqueKeys:    source.Keys(items),
		DebounceTime:  cfg.List.Debounce(),
		ThrottleTime:  cfg.List.Throttle(),
		OnScroll:      m.onScroll,
		OnUpdate:      m.onUpdate,
		Scheduler:     m.sched,
		Logger:        log,
		BottomRetries: cfg.List.BottomRetries,
	})
	m.mode = m.engine.Mode()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.sched.SetProgram(p)
	m.helpOps.SetProgram(p)
}

// Range returns the live window
func (m *Model) Range() domain.Range {
	return m.rng
}

// Engine returns the virtual list engine
func (m *Model) Engine() *virtual.Engine[string] {
	return m.engine
}

// SetItems replaces the list content
func (m *Model) SetItems(title string, items []source.Item) {
	m.title = title
	m.items = items
	m.lead, m.leadLen = m.renderer.Banner(title, len(items))
	m.anchor.SetLead(m.leadLen)

	if err := m.engine.SetOption(virtual.OptionUniqueKeys, source.Keys(items)); err != nil {
		m.fail("replace items", err)
		return
	}
	m.engine.Refresh()
	m.bus.Publish(eventbus.ItemsLoadedEvent{Source: title, Count: len(items)})
	m.render()
}

func (m *Model) fail(action string, err error) {
	m.err = err
	m.log.WithError(err).WithField("action", action).Warn("Action failed")
	m.bus.Publish(eventbus.ErrorEvent{Message: action, Err: err})
}

func (m *Model) onUpdate(r domain.Range) {
	m.rng = r
	m.dirty = true
	m.bus.Publish(eventbus.RangeUpdatedEvent{Range: r})
}

func (m *Model) onScroll(s domain.ScrollStatus) {
	m.status = s
	if s.Top || s.Bottom {
		m.bus.Publish(eventbus.ScrollStatusEvent{Status: s})
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer.SetWidth(msg.Width)
		m.root.Resize(msg.Width, max(msg.Height-chromeRows, 1))
		m.dirty = true

	case tea.KeyMsg:
		if m.prompting {
			cmd = m.updatePrompt(msg)
			break
		}
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.root.ScrollBy(m.axis, -wheelStep)
			case tea.MouseButtonWheelDown:
				m.root.ScrollBy(m.axis, wheelStep)
			}
		}

	case deferredMsg:
		if !msg.task.cancelled.Load() {
			msg.task.fn()
		}

	case helpPagerMsg:
		if msg.err != nil {
			m.fail("help pager", msg.err)
		}
		m.dirty = true

	case EventMsg:
		m.lastEvent = describeEvent(msg.Event)
	}

	m.render()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Destroy()
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.root.ScrollBy(m.axis, 1)
	case key.Matches(msg, m.keys.Up):
		m.root.ScrollBy(m.axis, -1)
	case key.Matches(msg, m.keys.PageDown):
		m.root.ScrollBy(m.axis, m.root.ClientSize(m.axis))
	case key.Matches(msg, m.keys.PageUp):
		m.root.ScrollBy(m.axis, -m.root.ClientSize(m.axis))
	case key.Matches(msg, m.keys.Top):
		m.engine.ScrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.engine.ScrollToBottom()
	case key.Matches(msg, m.keys.Jump):
		m.prompting = true
		m.prompt.SetValue("")
		return m.prompt.Focus()
	case key.Matches(msg, m.keys.Status):
		m.showStatus = !m.showStatus
	case key.Matches(msg, m.keys.Help):
		return m.helpOps.Show(renderHelpContent(m.keys))
	}
	return nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.prompting = false
		m.prompt.Blur()
		return nil
	case tea.KeyEnter:
		m.prompting = false
		m.prompt.Blur()
		value := strings.TrimSpace(m.prompt.Value())
		index, err := strconv.Atoi(value)
		if err != nil || index < 0 {
			m.fail("jump", fmt.Errorf("not an index: %q", value))
			return nil
		}
		m.err = nil
		m.engine.ScrollToIndex(index)
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

// render rebuilds the scroll content for the live window. Measuring rows
// can change the fallback size, which refreshes the range and needs
// another pass.
func (m *Model) render() {
	if m.width == 0 {
		return
	}

	for pass := 0; pass < maxRenderPasses && m.dirty; pass++ {
		m.dirty = false
		before := m.engine.ItemSize()

		rows := make([]views.Rendered, 0, m.rng.Len())
		for i := m.rng.Start; i <= m.rng.End && i < len(m.items); i++ {
			it := m.items[i]
			r := m.renderer.Render(views.Row{Index: i, Key: it.Key, Text: it.Text})
			m.engine.OnItemResized(it.Key, r.Size)
			rows = append(rows, r)
		}

		if mode := m.engine.Mode(); mode != m.mode {
			m.bus.Publish(eventbus.SizeModeChangedEvent{From: m.mode, To: mode})
			m.mode = mode
		}
		if m.engine.ItemSize() != before {
			// Padding was computed with the old fallback size
			m.engine.Refresh()
			continue
		}

		content, width := m.renderer.Compose(m.lead, m.rng, rows)
		if m.axis == domain.AxisHorizontal {
			m.hline = content
		}
		m.root.SetContent(content, width)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("vlist"))
	b.WriteString(" ")
	b.WriteString(m.styles.Banner.Render(m.title))
	b.WriteString("\n")

	if m.axis == domain.AxisHorizontal {
		visible := views.CutColumns(m.hline, m.root.Offset(m.axis), m.width)
		body := m.styles.Chip.Render(visible) + strings.Repeat("\n", max(m.vp.Height-1, 0))
		b.WriteString(body)
	} else {
		b.WriteString(m.vp.View())
	}
	b.WriteString("\n")

	switch {
	case m.prompting:
		b.WriteString(m.styles.Prompt.Render(m.prompt.View()))
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	case m.showStatus:
		b.WriteString(m.statusLine())
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) statusLine() string {
	parts := []string{
		fmt.Sprintf("items %d-%d/%d", m.rng.Start, m.rng.End, len(m.items)),
		fmt.Sprintf("pad %d/%d", m.rng.Front, m.rng.Behind),
		fmt.Sprintf("offset %d %s", m.status.Offset, m.status.Direction),
		fmt.Sprintf("size %s~%d", m.engine.Mode(), m.engine.ItemSize()),
	}
	line := m.styles.Status.Render(strings.Join(parts, " · "))

	var edge string
	switch {
	case m.status.Top:
		edge = "top"
	case m.status.Bottom:
		edge = "bottom"
	}
	if edge != "" {
		line += " " + m.styles.StatusEdge.Render(edge)
	}
	if m.lastEvent != "" {
		line += " " + m.styles.Event.Render(m.lastEvent)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func describeEvent(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.ItemsLoadedEvent:
		return fmt.Sprintf("loaded %d items", ev.Count)
	case eventbus.SizeModeChangedEvent:
		return fmt.Sprintf("sizes %s→%s", ev.From, ev.To)
	case eventbus.ErrorEvent:
		return "error: " + ev.Message
	}
	return string(e.Type())
}
