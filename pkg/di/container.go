// Package di provides dependency injection container
package di

import (
	"context"

	"github.com/ssargent/logmacster/pkg/api" //nolint:depguard
	"github.com/ssargent/logmacster/pkg/shell"
	"github.com/ssargent/logmacster/pkg/tui"
)

// EditorRunner runs the terminal grid until the user quits
type EditorRunner func(ctx context.Context, app *tui.App) error

// Container holds all the dependencies for the application
type Container struct {
	serverFactory api.ServerFactory
	dialogs       shell.Dialogs
	editorRunner  EditorRunner
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		serverFactory: api.NewServerFactory(),
		dialogs:       shell.ZenityDialogs{},
		editorRunner: func(ctx context.Context, app *tui.App) error {
			return app.Run(ctx)
		},
	}
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}

// GetDialogs returns the native dialog provider, nil when headless
func (c *Container) GetDialogs() shell.Dialogs {
	return c.dialogs
}

// SetDialogs allows overriding the dialog provider (for testing)
func (c *Container) SetDialogs(dialogs shell.Dialogs) {
	c.dialogs = dialogs
}

// GetEditorRunner returns the terminal grid runner
func (c *Container) GetEditorRunner() EditorRunner {
	return c.editorRunner
}

// SetEditorRunner allows overriding the terminal grid runner (for testing)
func (c *Container) SetEditorRunner(runner EditorRunner) {
	c.editorRunner = runner
}
