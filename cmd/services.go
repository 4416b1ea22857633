package cmd

import (
	"fmt"
	"os"

	"github.com/xvierd/pomokids/internal/adapters/notification"
	"github.com/xvierd/pomokids/internal/adapters/storage"
	"github.com/xvierd/pomokids/internal/config"
	"github.com/xvierd/pomokids/internal/ports"
	"github.com/xvierd/pomokids/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	repository ports.StateRepository
	notifier   ports.NotificationPort
	controller *services.AppController
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	// Load configuration
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	// Notifier: desktop popups when enabled, plain console lines otherwise
	if app.config.Notifications.Enabled {
		app.notifier = notification.NewDesktop(&app.config.Notifications)
	} else {
		app.notifier = notification.NewConsole(os.Stdout)
	}

	// Determine state document path
	if statePath == "" {
		statePath = config.GetStatePath(app.config)
	}
	app.repository = storage.New(statePath)

	// The controller loads the state and seeds first-run defaults.
	app.controller, err = services.NewAppController(app.repository, app.notifier)
	if err != nil {
		return fmt.Errorf("failed to initialize controller: %w", err)
	}

	return nil
}
