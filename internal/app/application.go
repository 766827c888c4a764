package app

import (
	"errors"
	"os"

	"mru-ui/internal/config"
	"mru-ui/internal/gui"
	"mru-ui/internal/logger"
	"mru-ui/internal/platform"
	"mru-ui/internal/preview"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	AppID      = "io.github.mruui"
	AppVersion = "0.1.0"
)

// ErrNoDesktopDriver is returned when the GUI driver cannot create an
// undecorated window.
var ErrNoDesktopDriver = errors.New("app: desktop driver required for an undecorated window")

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	runtime    *config.Runtime
	backend    *platform.Lazy
	guiManager *gui.Manager
	logger     logger.Logger
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, log, os.LookupEnv)
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger, lookup config.LookupFunc) (*Application, error) {
	drv, ok := fyneApp.Driver().(desktop.Driver)
	if !ok {
		return nil, ErrNoDesktopDriver
	}

	// A splash window is the only undecorated window the desktop driver
	// offers; it becomes the main window once marked as master.
	window := drv.CreateSplashWindow()
	window.SetTitle(cfg.Title)

	return assemble(fyneApp, window, false, cfg, log, lookup), nil
}

// assemble wires window into an Application. decorated reports whether the
// window already carries a system frame.
func assemble(fyneApp fyne.App, window fyne.Window, decorated bool, cfg config.Config, log logger.Logger, lookup config.LookupFunc) *Application {
	if log == nil {
		log = logger.Nop{}
	}

	fyneApp.Settings().SetTheme(gui.NewTheme())

	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(false)
	window.SetPadded(false)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":        AppVersion,
		"window_width":   cfg.Window.Width,
		"window_height":  cfg.Window.Height,
		"confirm_close":  cfg.ConfirmClose,
		"config_file":    cfg.File,
		"preview_max_px": cfg.Preview.MaxWidth,
		"decorated":      decorated,
	})

	runtime := config.NewRuntime(cfg.Options())
	backend := platform.NewLazy(window, log)

	guiManager := gui.NewManager(window, backend, preview.MustLoad(cfg.Preview.MaxWidth), gui.Options{
		Title:          cfg.Title,
		TitleBarHeight: cfg.TitleBarHeight,
		MinSize:        fyne.NewSize(cfg.Window.MinWidth, cfg.Window.MinHeight),
		Runtime:        runtime,
		Decorated:      decorated,
	}, log)

	lifecycle := NewLifecycle(log)
	lifecycle.Register("backend", backend)
	lifecycle.Register("gui", guiManager)

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		runtime:    runtime,
		backend:    backend,
		guiManager: guiManager,
		logger:     log,
		lifecycle:  lifecycle,
	}

	a.watchConfig(lookup)

	window.SetCloseIntercept(guiManager.RequestClose)
	window.SetOnClosed(func() {
		log.Info("Application", "window closed", nil)
	})
	window.SetContent(guiManager.GetMainContainer())

	log.Info("Application", "initialization complete", nil)
	return a
}

func (a *Application) watchConfig(lookup config.LookupFunc) {
	if a.config.File == "" {
		return
	}

	watcher, err := config.NewWatcher(a.config, lookup, a.runtime, a.logger)
	if err != nil {
		a.logger.Warning("Application", "config file will not be watched", map[string]interface{}{
			"file":  a.config.File,
			"error": err.Error(),
		})
		return
	}

	watcher.Start(a.lifecycle.Context(), func(config.Options) {
		fyne.Do(a.guiManager.OptionsChanged)
	})
	a.lifecycle.Register("config watcher", watcher)
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run() error {
	a.lifecycle.Listen(func() {
		fyne.Do(a.guiManager.ForceClose)
	})

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)

	a.fyneApp.Run()
	a.lifecycle.Shutdown()

	return nil
}
