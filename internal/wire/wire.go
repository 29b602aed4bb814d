// Package wire provides dependency injection for the carline application.
// New builds exactly one store per App and hands it to every component.
package wire

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/example/carline/internal/adapters/dom"
	"github.com/example/carline/internal/adapters/memory"
	"github.com/example/carline/internal/adapters/sqlite"
	"github.com/example/carline/internal/app"
	"github.com/example/carline/internal/component"
	"github.com/example/carline/internal/config"
	"github.com/example/carline/internal/db"
	"github.com/example/carline/internal/ports/secondary"
	"github.com/example/carline/internal/templates"
)

// App is the assembled UI: one document, one store, a form and the lines.
// It must be driven from a single goroutine.
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Store    *app.CarStoreImpl
	Document *dom.Document
	Form     *component.FormComponent
	Lines    []*component.LineComponent

	closers []func() error
}

// New builds the application described by cfg.
func New(cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}

	repo, err := a.carRepository()
	if err != nil {
		return nil, err
	}
	a.Store = app.NewCarStore(repo, logger)

	page, err := loadPage(cfg.Markup)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Document, err = dom.ParseString(page)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Form, err = component.NewFormComponent(a.Document, a.Store, logger, component.Mount{
		TemplateID: templates.FormTemplate,
		HostID:     templates.AppHostID,
		ElementID:  templates.FormElementID,
		Position:   secondary.InsertInsideAtStart,
	}, component.DefaultFormFields())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to build form: %w", err)
	}

	for _, lineID := range cfg.Lines {
		line, err := component.NewLineComponent(a.Document, a.Store, logger, component.Mount{
			TemplateID: templates.LineTemplate,
			HostID:     templates.AppHostID,
			ElementID:  lineID,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to build line %s: %w", lineID, err)
		}
		a.Lines = append(a.Lines, line)
	}

	logger.Debug().
		Str("backend", cfg.Backend).
		Strs("lines", cfg.Lines).
		Msg("application assembled")
	return a, nil
}

// Close releases the storage backend.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func (a *App) carRepository() (secondary.CarRepository, error) {
	switch a.Config.Backend {
	case config.BackendSQLite:
		database, err := db.Open()
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, database.Close)
		return sqlite.NewCarRepository(database), nil
	case config.BackendMemory, "":
		return memory.NewCarRepository(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", a.Config.Backend)
	}
}

func loadPage(path string) (string, error) {
	if path == "" {
		return templates.GetPage()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read markup: %w", err)
	}
	return string(data), nil
}
