// Package app wires the adapters to the core services. Every driving
// adapter obtains its Logic through Open.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/allanrobert0203/tp/internal/adapters/driven/config/file"
	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/jsonfile"
	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/memory"
	"github.com/allanrobert0203/tp/internal/adapters/driven/storage/sqlite"
	"github.com/allanrobert0203/tp/internal/adapters/driven/watcher"
	"github.com/allanrobert0203/tp/internal/core/domain"
	"github.com/allanrobert0203/tp/internal/core/ports/driven"
	"github.com/allanrobert0203/tp/internal/core/services"
	"github.com/allanrobert0203/tp/internal/logger"
)

// Options are the command-line overrides applied on top of config.toml.
type Options struct {
	// ConfigDir holds config.toml, preferences and relative data paths.
	// Empty means ~/.findr.
	ConfigDir string

	// DataPath overrides the data file named in the preferences.
	DataPath string

	// Ephemeral keeps candidates and preferences in memory only.
	Ephemeral bool
}

// App is a fully wired application.
type App struct {
	Config    *services.ConfigService
	AppConfig domain.AppConfig
	Model     *services.ModelManager
	Logic     *services.LogicManager
	Storage   driven.FindrStorage
	Prefs     driven.PrefsStorage

	// Watcher is nil when the backend has no file worth watching.
	Watcher driven.FileWatcher

	dir           string
	findrPrefPath string
	closers       []func() error
}

// OpenConfig builds the configuration service alone, for commands that
// do not need the candidate book.
func OpenConfig(opts Options) (*services.ConfigService, string, error) {
	dir := opts.ConfigDir
	if dir == "" {
		d, err := file.DefaultDir()
		if err != nil {
			return nil, "", err
		}
		dir = d
	}
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, "", fmt.Errorf("opening config: %w", err)
	}
	return services.NewConfigService(store), dir, nil
}

// Open loads configuration, preferences and the candidate book.
func Open(ctx context.Context, opts Options) (*App, error) {
	cfgSvc, dir, err := OpenConfig(opts)
	if err != nil {
		return nil, err
	}
	cfg, err := cfgSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if opts.Ephemeral {
		cfg.Storage.Backend = domain.StorageBackendMemory
	}
	logger.Debug("config dir %s, backend %s", dir, cfg.Storage.Backend)

	a := &App{Config: cfgSvc, AppConfig: cfg, dir: dir}

	if opts.Ephemeral {
		a.Prefs = memory.NewPrefsStorage()
	} else {
		a.Prefs = jsonfile.NewPrefsStorage(a.resolve(cfg.PrefsFile))
	}
	prefs := services.LoadPrefs(a.Prefs)
	a.findrPrefPath = prefs.FindrFilePath
	if opts.DataPath != "" {
		prefs.FindrFilePath = opts.DataPath
	}

	switch cfg.Storage.Backend {
	case domain.StorageBackendSQLite:
		store, err := sqlite.NewStore(dir)
		if err != nil {
			return nil, err
		}
		a.Storage = store
		a.closers = append(a.closers, store.Close)
	case domain.StorageBackendMemory:
		a.Storage = memory.NewFindrStorage()
	default:
		a.Storage = jsonfile.NewFindrStorage(a.resolve(prefs.FindrFilePath))
		a.Watcher = watcher.New(watcher.DefaultDebounce)
	}

	a.Model, err = services.InitModel(ctx, a.Storage, prefs, cfg.Storage.OnLoadError)
	if err != nil {
		_ = a.closeStores()
		return nil, err
	}
	a.Model.SetFindrFilePath(a.Storage.Path())
	a.Logic = services.NewLogicManager(a.Model, a.Storage)
	return a, nil
}

// Dir returns the configuration directory.
func (a *App) Dir() string {
	return a.dir
}

// LogPath returns where log output goes while the terminal UI runs.
func (a *App) LogPath() string {
	return a.resolve(a.AppConfig.LogFile)
}

// Close saves the preferences and releases the storage backend.
func (a *App) Close() error {
	// The model holds the resolved data path and any --data override;
	// neither is written back.
	prefs := a.Model.UserPrefs()
	prefs.FindrFilePath = a.findrPrefPath
	a.Model.SetUserPrefs(prefs)

	return errors.Join(services.SavePrefs(a.Prefs, a.Model), a.closeStores())
}

func (a *App) closeStores() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.dir, path)
}
