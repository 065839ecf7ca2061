// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/ssargent/logmacster/pkg/editor"
	"github.com/ssargent/logmacster/pkg/log"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the grid API for ctrl until ctx is canceled
	StartServer(ctx context.Context, ctrl *editor.Controller, config ServerConfig, logger *log.Logger) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
