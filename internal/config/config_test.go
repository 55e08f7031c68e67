package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vlist/internal/domain"
	"vlist/internal/eventbus"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceWithBus(nil, path)

	cfg := DefaultConfig()
	cfg.List.Keeps = 12
	cfg.List.Buffer = 4
	cfg.List.ThrottleMS = 16
	require.NoError(t, svc.SaveToPath(cfg, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(raw), "keeps = 12")

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
	require.Equal(t, 16*time.Millisecond, loaded.List.Throttle())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nkeeps = 8\nbuffer = 2\n"), 0644))

	cfg, err := NewConfigServiceWithBus(nil, path).Load()
	require.NoError(t, err)
	require.Equal(t, 8, cfg.List.Keeps)
	require.Equal(t, domain.AxisVertical, cfg.List.Axis())
	require.True(t, cfg.UI.ShowStatus)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[list]\nkeeps = 4\nbuffer = 6\n"), 0644))

	_, err := NewConfigServiceWithBus(nil, path).LoadFromPath(path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, os.WriteFile(path, []byte("[list]\ndirection = \"diagonal\"\n"), 0644))
	_, err = NewConfigServiceWithBus(nil, path).LoadFromPath(path)
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, os.WriteFile(path, []byte("not toml ["), 0644))
	_, err = NewConfigServiceWithBus(nil, path).LoadFromPath(path)
	require.Error(t, err)
}

func TestLoadMissingFileUsesDefaultsAndPublishes(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, err := NewConfigServiceWithBus(bus, path).Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)

	select {
	case e := <-got:
		loaded, ok := e.(eventbus.ConfigLoadedEvent)
		require.True(t, ok)
		require.Equal(t, path, loaded.Path)
		require.Equal(t, 30, loaded.Keeps)
	case <-time.After(2 * time.Second):
		t.Fatal("config loaded event was not delivered")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}
