package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// TreeFilename is the exported tree file name inside the output directory.
	TreeFilename = "tree.json"
	// GraphFilename is the exported graph file name inside the output directory.
	GraphFilename = "graph.json"
)

type exportTarget struct {
	filename string
	build    func(ctx context.Context, state *domain.NormalizedState) (any, error)
}

// Export writes the tree and the graph into the output directory. A target is skipped when it
// exists and was produced from identical inputs, unless opts.Force is set.
func (a *App) Export(ctx context.Context, opts Options) error {
	cfg, err := a.config(opts)
	if err != nil {
		return err
	}
	state, hash, err := a.loadState(ctx, cfg)
	if err != nil {
		return err
	}

	targets := []exportTarget{
		{filename: TreeFilename, build: func(ctx context.Context, s *domain.NormalizedState) (any, error) {
			return a.buildTree(ctx, s)
		}},
		{filename: GraphFilename, build: func(ctx context.Context, s *domain.NormalizedState) (any, error) {
			return a.buildGraph(ctx, s)
		}},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		path := filepath.Join(cfg.OutDir, target.filename)
		g.Go(func() error {
			ctx, vertex := a.telemetry.Record(gctx, "export "+path)
			err := a.exportTarget(ctx, state, hash, path, target, opts.Force)
			vertex.Complete(err)
			return err
		})
	}
	return g.Wait()
}

func (a *App) exportTarget(
	ctx context.Context,
	state *domain.NormalizedState,
	hash, path string,
	target exportTarget,
	force bool,
) error {
	if !force {
		upToDate, err := a.upToDate(path, hash)
		if err != nil {
			return err
		}
		if upToDate {
			if vertex, ok := ports.VertexFromContext(ctx); ok {
				vertex.Cached()
				vertex.Log(domain.LogLevelInfo, "inputs unchanged")
			}
			a.logger.Info("skipping " + path + ": inputs unchanged")
			return nil
		}
	}

	result, err := target.build(ctx, state)
	if err != nil {
		return err
	}
	if err := a.writer.WriteFile(path, result); err != nil {
		return err
	}
	a.logger.Info("wrote " + path)

	if err := a.store.Put(domain.ExportInfo{
		Target:    path,
		InputHash: hash,
		Timestamp: time.Now(),
	}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to record export"), "target", path)
	}
	return nil
}

// upToDate reports whether path exists and was last exported from inputs hashing to hash.
func (a *App) upToDate(path, hash string) (bool, error) {
	info, err := a.store.Get(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read export state"), "target", path)
	}
	if info == nil || info.InputHash != hash {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat export target"), "target", path)
	}
	return true, nil
}
