package config

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"mru-ui/internal/logger"
)

// Options are the settings that may change while the window is open.
type Options struct {
	ConfirmClose bool
}

func (c Config) Options() Options {
	return Options{ConfirmClose: c.ConfirmClose}
}

// Runtime publishes the current Options to the UI. Reads are lock free so
// the title bar can consult it on every frame.
type Runtime struct {
	current atomic.Pointer[Options]
}

func NewRuntime(opts Options) *Runtime {
	r := &Runtime{}
	r.Store(opts)
	return r
}

func (r *Runtime) Load() Options {
	return *r.current.Load()
}

func (r *Runtime) Store(opts Options) {
	r.current.Store(&opts)
}

// ConfirmClose satisfies chrome.Options.
func (r *Runtime) ConfirmClose() bool {
	return r.Load().ConfirmClose
}

// Watcher reloads the runtime options whenever the config file changes.
// Environment overrides are re-applied after every reload so they keep
// their precedence over the file.
type Watcher struct {
	path    string
	lookup  LookupFunc
	runtime *Runtime
	logger  logger.Logger
	watcher *fsnotify.Watcher

	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

var ErrNoConfigFile = errors.New("no config file to watch")

func NewWatcher(cfg Config, lookup LookupFunc, runtime *Runtime, log logger.Logger) (*Watcher, error) {
	if cfg.File == "" {
		return nil, ErrNoConfigFile
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors commonly replace the file through a rename, which drops a
	// watch placed on the file itself, so the directory is watched instead.
	if err := fw.Add(filepath.Dir(cfg.File)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		path:    filepath.Clean(cfg.File),
		lookup:  lookup,
		runtime: runtime,
		logger:  log,
		watcher: fw,
	}, nil
}

// Start processes file events until ctx is cancelled or Shutdown is called.
// onChange runs after every successful reload.
func (w *Watcher) Start(ctx context.Context, onChange func(Options)) {
	ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if opts, ok := w.reload(); ok && onChange != nil {
					onChange(opts)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.logger.Error("ConfigWatcher", err, map[string]interface{}{"path": w.path})
			}
		}
	}()

	w.logger.Debug("ConfigWatcher", "watching config file", map[string]interface{}{"path": w.path})
}

func (w *Watcher) reload() (Options, bool) {
	cfg, err := ReadFile(w.path, Default())
	if err == nil {
		err = applyEnv(&cfg, w.lookup)
	}
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		w.logger.Warning("ConfigWatcher", "reload rejected, keeping previous options", map[string]interface{}{
			"path":  w.path,
			"error": err.Error(),
		})
		return Options{}, false
	}

	opts := cfg.Options()
	w.runtime.Store(opts)
	w.logger.Info("ConfigWatcher", "runtime options reloaded", map[string]interface{}{
		"confirm_close": opts.ConfirmClose,
	})
	return opts, true
}

func (w *Watcher) Shutdown() {
	w.once.Do(func() {
		if w.cancel != nil {
			w.cancel()
		}
		w.watcher.Close()
		w.wg.Wait()
	})
}
