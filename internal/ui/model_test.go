package ui

import (
	"fmt"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vlist/internal/config"
	"vlist/internal/domain"
	"vlist/internal/eventbus"
	"vlist/internal/source"
)

func lineItems(t *testing.T, n int) []source.Item {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	items, err := source.FromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, items, n)
	return items
}

func newTestModel(t *testing.T, axis domain.Axis, items []source.Item) *Model {
	t.Helper()

	bus := eventbus.New()
	t.Cleanup(bus.Close)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.DefaultConfig()
	cfg.List.Keeps = 20
	cfg.List.Buffer = 5
	cfg.List.Direction = string(axis)

	m := NewModel(bus, cfg, log, "test", items)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelInitialWindow(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 500))

	rng := m.Range()
	assert.Equal(t, 0, rng.Start)
	assert.Equal(t, 19, rng.End)
	assert.Equal(t, 0, rng.Front)
	assert.Equal(t, 480, rng.Behind, "one line per unrendered item once sizes are fixed")
	assert.Equal(t, domain.SizeModeFixed, m.Engine().Mode())

	view := m.View()
	assert.Contains(t, view, "line 0")
	assert.NotContains(t, view, "line 25")
}

func TestModelLoadingBeforeResize(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	m := NewModel(bus, config.DefaultConfig(), logrus.New(), "test", lineItems(t, 3))
	assert.Equal(t, "Loading...", m.View())
}

func TestModelScrollDownMovesWindow(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 500))

	for i := 0; i < 3; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}

	rng := m.Range()
	assert.Greater(t, rng.Start, 0)
	assert.Equal(t, rng.Start, rng.Front)
	assert.Equal(t, 19, rng.End-rng.Start)
	assert.Equal(t, domain.DirectionBehind, m.Engine().Direction())
}

func TestModelJumpToIndex(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 500))

	m.Update(runes(":"))
	require.True(t, m.prompting)
	for _, r := range "250" {
		m.Update(runes(string(r)))
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.prompting)
	assert.NoError(t, m.err)
	assert.Equal(t, 250, m.Range().Start)
	assert.Contains(t, m.View(), "line 250")
}

func TestModelJumpRejectsGarbage(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 50))

	m.Update(runes(":"))
	m.Update(runes("x"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.Error(t, m.err)
	assert.Equal(t, 0, m.Range().Start)
	assert.Contains(t, m.View(), "not an index")
}

func TestModelJumpCancel(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 50))

	m.Update(runes(":"))
	m.Update(runes("9"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.prompting)
	assert.Equal(t, 0, m.Range().Start)
}

func TestModelBottomAndTop(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 500))

	m.Update(runes("G"))
	assert.GreaterOrEqual(t, m.Range().End, 490)
	assert.True(t, m.Engine().AtBottom())

	m.Update(runes("g"))
	assert.Equal(t, 0, m.Range().Start)
	assert.Equal(t, 0, m.Engine().Offset())
}

func TestModelMouseWheel(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 500))

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelStep, m.Engine().Offset())

	m.Update(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 0, m.Engine().Offset())
}

func TestModelVariableHeights(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, source.Generate(200))

	assert.Equal(t, domain.SizeModeDynamic, m.Engine().Mode())
	avg, ok := m.Engine().Average()
	require.True(t, ok, "a full window of measured rows settles the average")
	assert.Greater(t, avg, 1)
	assert.Equal(t, (199-m.Range().End)*avg, m.Range().Behind)
}

func TestModelStatusToggle(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 50))
	assert.Contains(t, m.View(), "items 0-19/50")

	m.Update(runes("s"))
	assert.NotContains(t, m.View(), "items 0-19/50")
}

func TestModelEventMsg(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 50))

	m.Update(EventMsg{Event: eventbus.ItemsLoadedEvent{Source: "x", Count: 50}})
	assert.Contains(t, m.View(), "loaded 50 items")
}

func TestModelSetItems(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 500))
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})

	m.SetItems("short", lineItems(t, 10))

	rng := m.Range()
	assert.Equal(t, 0, rng.Start)
	assert.Equal(t, 9, rng.End)
	assert.Equal(t, 0, rng.Behind)
	assert.Equal(t, domain.SizeModeFixed, m.Engine().Mode(), "replacing keys keeps the size mode")
}

func TestModelHorizontal(t *testing.T) {
	m := newTestModel(t, domain.AxisHorizontal, lineItems(t, 100))

	rng := m.Range()
	assert.Equal(t, 0, rng.Start)
	assert.Equal(t, 19, rng.End)
	assert.Equal(t, domain.SizeModeFixed, m.Engine().Mode())
	assert.Contains(t, m.View(), "line 0")

	m.Update(runes("G"))
	assert.GreaterOrEqual(t, m.Range().End, 95)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 10))

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDeferredMsgRespectsCancel(t *testing.T) {
	m := newTestModel(t, domain.AxisVertical, lineItems(t, 10))

	ran := 0
	task := &deferredTask{fn: func() { ran++ }}
	m.Update(deferredMsg{task: task})
	task.cancelled.Store(true)
	m.Update(deferredMsg{task: task})

	assert.Equal(t, 1, ran)
}

func TestRenderHelpContent(t *testing.T) {
	content := renderHelpContent(newKeyMap())
	assert.Contains(t, content, "Scrolling")
	assert.Contains(t, content, "go to index")
}
