package app

import (
	"context"
	"os"

	"mru-ui/internal/logger"
	"mru-ui/internal/shutdown"
)

// Lifecycle owns the shutdown order of the application components.
type Lifecycle struct {
	shutdown *shutdown.Manager
	logger   logger.Logger
}

func NewLifecycle(log logger.Logger) *Lifecycle {
	return &Lifecycle{
		shutdown: shutdown.NewManager(log),
		logger:   log,
	}
}

// Register adds a component. Components shut down in reverse registration
// order, so dependencies must be registered first.
func (l *Lifecycle) Register(name string, component shutdown.Shutdownable) {
	l.logger.Debug("Lifecycle", "component registered", map[string]interface{}{
		"component": name,
	})
	l.shutdown.Register(component)
}

// Listen forwards the first termination signal to onSignal.
func (l *Lifecycle) Listen(onSignal func()) {
	l.shutdown.Listen(func(os.Signal) { onSignal() })
}

func (l *Lifecycle) Context() context.Context {
	return l.shutdown.Context()
}

func (l *Lifecycle) Shutdown() {
	l.shutdown.Shutdown()
}
