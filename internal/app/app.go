// Package app implements the application layer for cachet.
package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.trai.ch/cachet/internal/adapters/watcher"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/cachet/internal/engine/evaluator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	evaluator *evaluator.Evaluator
	store     ports.SnapshotStore
	sources   ports.Sources
	props     ports.PropertyStore
	tracer    ports.Tracer
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	eval *evaluator.Evaluator,
	store ports.SnapshotStore,
	sources ports.Sources,
	props ports.PropertyStore,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		evaluator: eval,
		store:     store,
		sources:   sources,
		props:     props,
		tracer:    tracer,
		logger:    logger,
	}
}

// RunOptions control one evaluation run.
type RunOptions struct {
	// NoCache ignores the previous snapshot, forcing a stale verdict.
	NoCache bool
}

// Run performs one evaluation pass: it loads the manifest, decides cache
// validity against the previous snapshot, evaluates the provider graph and
// persists the fresh snapshot for the next run.
func (a *App) Run(ctx context.Context, cwd string, opts RunOptions) (*domain.RunReport, error) {
	ctx, span := a.tracer.Start(ctx, "run")
	defer span.End()

	manifest, err := a.loader.Load(cwd)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	fps, err := manifest.Graph.Fingerprints()
	if err != nil {
		return nil, err
	}

	var prev *domain.Snapshot
	if opts.NoCache {
		a.logger.Info("cache check skipped (--no-cache)")
	} else {
		prev, err = a.store.Get()
		if err != nil {
			return nil, err
		}
	}

	status, reasons, err := a.validity(fps, prev)
	if err != nil {
		return nil, err
	}

	result, err := a.evaluator.Evaluate(ctx, manifest)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	snap := domain.Snapshot{
		Fingerprints: fingerprintStrings(fps),
		Inputs:       result.Record,
		CreatedAt:    time.Now(),
	}
	if err := a.store.Put(snap); err != nil {
		return nil, zerr.Wrap(err, "failed to store snapshot")
	}

	span.SetAttribute("cache_status", string(status))
	a.logger.Info("configuration cache " + string(status))

	return &domain.RunReport{
		Status:  status,
		Reasons: reasons,
		Values:  result.Values,
		Inputs:  result.Record,
	}, nil
}

// validity decides whether the previous snapshot is still reusable: the
// declared-parameter fingerprints must match and every recorded input must
// re-probe to its previously observed value. Nothing else is consulted, so
// side effects that a correct tracker kept out of the record can never make
// the cache stale.
func (a *App) validity(
	fps map[domain.InternedString]domain.Fingerprint,
	prev *domain.Snapshot,
) (domain.CacheStatus, []string, error) {
	if prev == nil {
		return domain.CacheStale, []string{"no snapshot from a previous run"}, nil
	}

	var reasons []string

	current := fingerprintStrings(fps)
	for name, fp := range current {
		prevFp, ok := prev.Fingerprints[name]
		switch {
		case !ok:
			reasons = append(reasons, "provider added: "+name)
		case prevFp != fp:
			reasons = append(reasons, "fingerprint changed: provider "+name)
		}
	}
	for name := range prev.Fingerprints {
		if _, ok := current[name]; !ok {
			reasons = append(reasons, "provider removed: "+name)
		}
	}

	for _, obs := range prev.Inputs {
		hash, err := a.reprobe(obs)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("input missing: %s %s", obs.Kind, obs.ID))
			continue
		}
		if hash != obs.ValueHash {
			reasons = append(reasons, fmt.Sprintf("input changed: %s %s", obs.Kind, obs.ID))
		}
	}

	if len(reasons) == 0 {
		return domain.CacheValid, nil, nil
	}
	sort.Strings(reasons)
	return domain.CacheStale, reasons, nil
}

// reprobe re-observes a recorded input and returns its current value hash.
func (a *App) reprobe(obs domain.Observation) (string, error) {
	switch obs.Kind {
	case domain.SourceFile:
		_, current, err := a.sources.ObserveFile(obs.ID)
		if err != nil {
			return "", err
		}
		return current.ValueHash, nil
	case domain.SourceEnv:
		_, current := a.sources.ObserveEnv(obs.ID)
		return current.ValueHash, nil
	case domain.SourceProperty:
		_, current, err := a.props.Observe(obs.ID)
		if err != nil {
			return "", err
		}
		return current.ValueHash, nil
	default:
		return "", zerr.With(zerr.New("unknown source kind"), "kind", string(obs.Kind))
	}
}

// Watch runs once, then re-runs whenever a recorded input file changes.
// Each report is delivered to sink.
func (a *App) Watch(ctx context.Context, cwd string, w *watcher.Watcher, opts RunOptions, sink func(*domain.RunReport)) error {
	report, err := a.Run(ctx, cwd, opts)
	if err != nil {
		return err
	}
	sink(report)

	var paths []string
	for _, obs := range report.Inputs {
		if obs.Kind == domain.SourceFile {
			paths = append(paths, obs.ID)
		}
	}

	return w.Watch(ctx, paths, func(changed []string) {
		a.logger.Info(fmt.Sprintf("%d input(s) changed, re-evaluating", len(changed)))

		// NoCache applies to the initial run only; re-runs always check.
		report, err := a.Run(ctx, cwd, RunOptions{})
		if err != nil {
			a.logger.Error(err)
			return
		}
		sink(report)
	})
}

func fingerprintStrings(fps map[domain.InternedString]domain.Fingerprint) map[string]string {
	out := make(map[string]string, len(fps))
	for name, fp := range fps {
		out[name.String()] = string(fp)
	}
	return out
}
