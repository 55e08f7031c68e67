package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"vlist/internal/config"
	"vlist/internal/eventbus"
	"vlist/internal/source"
	"vlist/internal/ui"
)

func main() {
	var (
		configPath string
		filePath   string
		count      int
		keeps      int
		buffer     int
		saveConfig bool
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&filePath, "file", "", "File whose lines are listed")
	flag.IntVar(&count, "count", 10000, "Number of generated items when no file is given")
	flag.IntVar(&keeps, "keeps", 0, "Number of live items (overrides config)")
	flag.IntVar(&buffer, "buffer", 0, "Items of slack before the window moves (overrides config)")
	flag.BoolVar(&saveConfig, "save-config", false, "Write the effective config and exit")
	flag.Parse()

	if filePath == "" && flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}

	// Set up logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	logFile, err := os.OpenFile("vlist.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.WithError(err).Warn("Could not open log file")
	} else {
		defer logFile.Close()
		logger.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.NewWithLogger(logger)
	defer bus.Close()

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.WithFields(logrus.Fields{"path": ev.Path, "keeps": ev.Keeps}).Info("Config loaded")
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ConfigSavedEvent); ok {
			logger.WithField("path", ev.Path).Info("Config saved")
		}
	})

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		logger.WithError(err).Error("Error loading config")
		cfg = config.DefaultConfig()
	}
	if keeps > 0 {
		cfg.List.Keeps = keeps
	}
	if buffer > 0 {
		cfg.List.Buffer = buffer
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid settings: %v\n", err)
		os.Exit(1)
	}
	if level, err := logrus.ParseLevel(cfg.UI.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if saveConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	title, items, err := loadItems(filePath, count)
	if err != nil {
		fmt.Printf("Error loading items: %v\n", err)
		os.Exit(1)
	}

	uiModel := ui.NewModel(bus, cfg, logger, title, items)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Log window changes and forward the rest to the status line
	bus.Subscribe(eventbus.EventRangeUpdated, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.RangeUpdatedEvent); ok {
			logger.WithFields(logrus.Fields{
				"start": ev.Range.Start,
				"end":   ev.Range.End,
			}).Trace("Range updated")
		}
	})
	bus.Subscribe(eventbus.EventScrollStatus, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ScrollStatusEvent); ok {
			logger.WithFields(logrus.Fields{
				"top":    ev.Status.Top,
				"bottom": ev.Status.Bottom,
				"offset": ev.Status.Offset,
			}).Debug("Reached edge")
		}
	})
	forward := func(e eventbus.DomainEvent) {
		logger.WithField("event", e.Type()).Info("Event")
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventItemsLoaded,
		eventbus.EventSizeModeChanged,
		eventbus.EventError,
	} {
		bus.Subscribe(t, forward)
	}

	bus.Publish(eventbus.ItemsLoadedEvent{Source: title, Count: len(items)})

	logger.WithFields(logrus.Fields{
		"items": len(items),
		"keeps": cfg.List.Keeps,
		"axis":  cfg.List.Direction,
	}).Info("Starting")

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadItems(path string, count int) (string, []source.Item, error) {
	if path == "" {
		return "generated", source.Generate(count), nil
	}
	items, err := source.FromFile(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), items, nil
}
