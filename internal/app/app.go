// Package app implements the application layer for rebind.
package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.trai.ch/rebind/internal/adapters/scancache" //nolint:depguard // Wired in app layer
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/rebind/internal/engine/index"
	"go.trai.ch/rebind/internal/engine/registry"
	"go.trai.ch/zerr"
)

// App opens workspaces described by rebind.yaml files.
type App struct {
	settings  ports.SettingsLoader
	universes ports.UniverseLoader
	registry  *registry.Registry
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	settings ports.SettingsLoader,
	universes ports.UniverseLoader,
	reg *registry.Registry,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		settings:  settings,
		universes: universes,
		registry:  reg,
		logger:    logger,
		telemetry: telemetry,
	}
}

// OpenOptions tune how a workspace is opened.
type OpenOptions struct {
	// SessionID names the compilation context. A random id is used when empty.
	SessionID string
}

// Open loads the settings at configPath and the manifest they point to.
func (a *App) Open(ctx context.Context, configPath string, opts OpenOptions) (*Workspace, error) {
	settings, err := a.settings.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	universe, err := a.universes.Load(settings.ManifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	// The first workspace sizes the shared scan cache; later ones reuse it.
	registry.Provide(a.registry, func() (*scancache.Cache, error) {
		return scancache.New(settings.Cache)
	})
	cache, err := registry.Get[*scancache.Cache](a.registry)
	if err != nil {
		return nil, err
	}

	digest := universe.Digest()
	ix := index.New(universe, cache.Wrap(universe, digest), a.registry, a.logger, a.telemetry, digest)
	ix.SetSkipReloadableSubtypes(settings.SkipReloadableSubtypes)

	id := opts.SessionID
	if id == "" {
		id = uuid.NewString()
	}
	session := domain.NewCompilationContext(id, a.reloadablePrefixes(ctx, id, settings, universe))

	a.logger.Info(fmt.Sprintf("opened workspace %s with %d known types (session %s)",
		settings.ManifestPath, len(universe.AllTypes()), id))

	return &Workspace{
		settings: settings,
		universe: universe,
		index:    ix,
		session:  session,
		registry: a.registry,
	}, nil
}

// reloadablePrefixes merges the prefixes named in the settings with those the
// universe reports, settings first. The loader runs once per session, so a failure is
// logged once and the session then treats nothing as reloadable.
func (a *App) reloadablePrefixes(ctx context.Context, session string, settings *domain.Settings, universe ports.Universe) domain.PrefixLoader {
	return func() ([]string, error) {
		prefixes := append([]string(nil), settings.ReloadablePackages...)
		provider, ok := universe.(ports.ReloadablePackageProvider)
		if !ok {
			return prefixes, nil
		}
		extra, err := provider.ReloadablePackages(ctx)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to resolve reloadable packages"), "session", session)
			a.logger.Warn(fmt.Sprintf("session %s treats no package as reloadable: %v", session, err))
			return nil, err
		}
		seen := make(map[string]bool, len(prefixes)+len(extra))
		for _, p := range prefixes {
			seen[p] = true
		}
		for _, p := range extra {
			if !seen[p] {
				seen[p] = true
				prefixes = append(prefixes, p)
			}
		}
		return prefixes, nil
	}
}
