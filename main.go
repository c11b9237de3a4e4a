package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"fxpick/internal/config"
	"fxpick/internal/countries"
	"fxpick/internal/eventbus"
	"fxpick/internal/suggest"
	"fxpick/internal/ui"
)

func main() {
	var configPath string
	var endpoint string
	var debounceMS int
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&endpoint, "endpoint", "", "Country dataset endpoint (overrides config)")
	flag.IntVar(&debounceMS, "debounce", 0, "Debounce delay in milliseconds (overrides config)")
	flag.Parse()

	// Log to a file; stdout belongs to the TUI
	logFile, err := os.OpenFile("fxpick.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create event bus
	bus := eventbus.New()

	// Load configuration, then apply flag overrides
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath)
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if debounceMS > 0 {
		cfg.UISettings.DebounceMS = debounceMS
	}

	timeout := time.Duration(cfg.RequestTimeoutMS) * time.Millisecond

	// Initialize the suggestion pipeline; the service subscribes to
	// lookup requests automatically
	client := countries.NewClient(&countries.ClientConfig{
		Endpoint: cfg.Endpoint,
		Timeout:  timeout,
	})
	source := suggest.NewCountrySource(client)
	_ = suggest.NewService(bus, source, timeout)

	// Create UI model and Bubble Tea program
	model := ui.NewModel(cfg, bus, source)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	// Forward settled lookups to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	bus.Subscribe(eventbus.EventSuggestionsReady, func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event", "type", e.Type())
		}
	})
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Info("starting UI", "endpoint", cfg.Endpoint, "debounce_ms", cfg.UISettings.DebounceMS)
	if _, err := p.Run(); err != nil {
		log.Error("error running program", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}

// loadOrCreateConfig loads the config from an explicit path or the default
// location, falling back to defaults when nothing can be read
func loadOrCreateConfig(configSvc config.ConfigService, path string) *config.Config {
	if path != "" {
		cfg, err := configSvc.LoadFromPath(path)
		if err != nil {
			log.Warn("failed to load config, using defaults", "path", path, "err", err)
			return config.DefaultConfig()
		}
		log.Info("loaded config", "path", path)
		return cfg
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		return config.DefaultConfig()
	}
	return cfg
}
