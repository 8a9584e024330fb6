// Package app implements the application layer for deparse.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	manifests    ports.ManifestLoader
	lockfiles    ports.LockfileParser
	hasher       ports.Hasher
	store        ports.ExportInfoStore
	cache        ports.StateCache
	writer       ports.ResultWriter
	telemetry    ports.Telemetry
	logger       ports.Logger
	out          io.Writer

	progressOut  io.Writer
	progressOnce sync.Once
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	manifests ports.ManifestLoader,
	lockfiles ports.LockfileParser,
	hasher ports.Hasher,
	store ports.ExportInfoStore,
	cache ports.StateCache,
	writer ports.ResultWriter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		manifests:    manifests,
		lockfiles:    lockfiles,
		hasher:       hasher,
		store:        store,
		cache:        cache,
		writer:       writer,
		telemetry:    telemetry,
		logger:       logger,
		out:          os.Stdout,
		progressOut:  os.Stderr,
	}
}

// WithOutput sets the writer results are printed to. Defaults to stdout.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithProgressOutput sets the writer progress is rendered to when enabled. Defaults to stderr.
func (a *App) WithProgressOutput(w io.Writer) *App {
	a.progressOut = w
	return a
}

// Options carries per-invocation settings from the command line.
// Empty fields fall back to the configuration file and environment.
type Options struct {
	ConfigPath string
	Manifest   string
	Lockfile   string
	OutDir     string
	Force      bool
	Progress   bool
}

// Tree prints the dependency tree of the manifest's declared dependencies.
func (a *App) Tree(ctx context.Context, opts Options) error {
	state, _, err := a.load(ctx, opts)
	if err != nil {
		return err
	}
	nodes, err := a.buildTree(ctx, state)
	if err != nil {
		return err
	}
	return a.writer.Encode(a.out, nodes)
}

// Graph prints the flat module graph.
func (a *App) Graph(ctx context.Context, opts Options) error {
	state, _, err := a.load(ctx, opts)
	if err != nil {
		return err
	}
	graph, err := a.buildGraph(ctx, state)
	if err != nil {
		return err
	}
	return a.writer.Encode(a.out, graph)
}

// Direct prints the manifest's direct dependencies with their resolved versions.
func (a *App) Direct(ctx context.Context, opts Options) error {
	state, _, err := a.load(ctx, opts)
	if err != nil {
		return err
	}

	var deps []domain.DirectDependency
	err = a.record(ctx, domain.PhaseDirect, func(_ context.Context) error {
		var derr error
		deps, derr = domain.DirectDependencies(state)
		return derr
	})
	if err != nil {
		return err
	}
	return a.writer.Encode(a.out, deps)
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// config resolves the configuration file and applies command line overrides. It switches
// progress rendering on the first time it is requested.
func (a *App) config(opts Options) (domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	cfg = cfg.Merge(domain.Config{
		Manifest: opts.Manifest,
		Lockfile: opts.Lockfile,
		OutDir:   opts.OutDir,
		Progress: opts.Progress,
	})
	if cfg.Progress {
		a.progressOnce.Do(func() { a.telemetry.SetOutput(a.progressOut) })
	}
	return cfg, nil
}

// load returns the normalized state for the configured inputs and their input hash.
// States are memoized by input hash.
func (a *App) load(ctx context.Context, opts Options) (*domain.NormalizedState, string, error) {
	cfg, err := a.config(opts)
	if err != nil {
		return nil, "", err
	}
	return a.loadState(ctx, cfg)
}

func (a *App) loadState(ctx context.Context, cfg domain.Config) (*domain.NormalizedState, string, error) {
	hash, err := a.hasher.ComputeInputHash([]string{cfg.Manifest, cfg.Lockfile})
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to hash inputs")
	}
	if state, ok := a.cache.Get(hash); ok {
		return state, hash, nil
	}

	var (
		manifest *domain.Manifest
		table    *domain.LockTable
	)
	err = a.record(ctx, domain.PhaseLoad, func(ctx context.Context) error {
		g, _ := errgroup.WithContext(ctx)
		g.Go(func() error {
			var lerr error
			manifest, lerr = a.manifests.Load(cfg.Manifest)
			return lerr
		})
		g.Go(func() error {
			var lerr error
			table, lerr = a.lockfiles.Parse(cfg.Lockfile)
			return lerr
		})
		return g.Wait()
	})
	if err != nil {
		return nil, "", err
	}

	var state *domain.NormalizedState
	err = a.record(ctx, domain.PhaseNormalize, func(_ context.Context) error {
		var nerr error
		state, nerr = domain.Normalize(manifest, table)
		return nerr
	})
	if err != nil {
		return nil, "", err
	}

	a.cache.Add(hash, state)
	return state, hash, nil
}

func (a *App) buildTree(ctx context.Context, state *domain.NormalizedState) ([]domain.TreeNode, error) {
	var nodes []domain.TreeNode
	err := a.record(ctx, domain.PhaseTree, func(_ context.Context) error {
		var berr error
		nodes, berr = domain.BuildTree(state, state.Manifest().Intents())
		return berr
	})
	return nodes, err
}

func (a *App) buildGraph(ctx context.Context, state *domain.NormalizedState) (*domain.GraphResult, error) {
	var graph *domain.GraphResult
	err := a.record(ctx, domain.PhaseGraph, func(_ context.Context) error {
		var berr error
		graph, berr = domain.BuildGraph(state)
		return berr
	})
	return graph, err
}

// record runs fn inside a telemetry vertex named after phase.
func (a *App) record(ctx context.Context, phase domain.Phase, fn func(ctx context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, string(phase))
	err := fn(ctx)
	vertex.Complete(err)
	return err
}
