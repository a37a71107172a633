// Package evaluator drives evaluation of a provider graph under input
// tracking.
package evaluator

import (
	"context"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/cachet/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// Evaluator resolves provider values and maintains the input record of a
// single evaluation pass.
//
// Scope discipline: every bound parameter is resolved under its own disable
// scope, and a provider's Obtain runs under a fresh scope independent of the
// parameter scopes. Scopes are released via defer so release happens exactly
// once per entry on every exit path.
type Evaluator struct {
	sources ports.Sources
	props   ports.PropertyStore
	tracer  ports.Tracer
}

// New creates a new Evaluator.
func New(sources ports.Sources, props ports.PropertyStore, tracer ports.Tracer) *Evaluator {
	return &Evaluator{
		sources: sources,
		props:   props,
		tracer:  tracer,
	}
}

// Result is the outcome of one evaluation pass.
type Result struct {
	// Values maps provider name to obtained value.
	Values map[string]string
	// Record is the input record of the pass, in canonical order.
	Record []domain.Observation
}

// Evaluate runs one evaluation pass over the manifest: it observes the
// tracked top-level inputs with tracking enabled, then obtains every
// provider value with tracking disabled around both parameter resolution
// and Obtain itself.
func (e *Evaluator) Evaluate(ctx context.Context, m *domain.Manifest) (*Result, error) {
	ctx, span := e.tracer.Start(ctx, "evaluate")
	defer span.End()
	span.SetAttribute("providers", m.Graph.ProviderCount())

	tr := tracker.New()

	if err := e.trackInputs(tr, m); err != nil {
		span.RecordError(err)
		return nil, err
	}

	values := make(map[domain.InternedString]string, m.Graph.ProviderCount())
	for p := range m.Graph.Walk() {
		if _, err := e.resolve(ctx, tr, m.Graph, p, values); err != nil {
			span.RecordError(err)
			return nil, zerr.With(zerr.Wrap(err, domain.ErrEvaluationFailed.Error()), "provider", p.Name.String())
		}
	}

	out := make(map[string]string, len(values))
	for name, v := range values {
		out[name.String()] = v
	}
	return &Result{Values: out, Record: tr.Entries()}, nil
}

// trackInputs observes the configuration file and the declared inputs with
// tracking enabled, so they become cache inputs.
func (e *Evaluator) trackInputs(tr *tracker.Tracker, m *domain.Manifest) error {
	paths := make([]string, 0, len(m.TrackedInputs)+1)
	if m.ConfigPath != "" {
		paths = append(paths, m.ConfigPath)
	}
	paths = append(paths, m.TrackedInputs...)

	for _, path := range paths {
		_, obs, err := e.sources.ObserveFile(path)
		if err != nil {
			return err
		}
		tr.Record(obs)
	}
	return nil
}

// resolve returns the value of p, obtaining it if this pass has not yet.
// Values are memoized per pass so a provider shared by several bindings is
// obtained once.
func (e *Evaluator) resolve(
	ctx context.Context,
	tr *tracker.Tracker,
	g *domain.Graph,
	p domain.Provider,
	values map[domain.InternedString]string,
) (string, error) {
	if v, ok := values[p.Name]; ok {
		return v, nil
	}

	ctx, span := e.tracer.Start(ctx, "resolve."+p.Name.String())
	defer span.End()
	span.SetAttribute("kind", string(p.Kind))

	params, err := e.resolveParams(ctx, tr, g, p, values)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	v, err := e.obtain(tr, p, params)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	values[p.Name] = v
	return v, nil
}

// resolveParams resolves every parameter slot of p. Each bound slot is
// resolved under its own disable scope.
func (e *Evaluator) resolveParams(
	ctx context.Context,
	tr *tracker.Tracker,
	g *domain.Graph,
	p domain.Provider,
	values map[domain.InternedString]string,
) (map[string]string, error) {
	params := make(map[string]string, len(p.Params))
	for _, param := range p.Params {
		if !param.IsBound() {
			params[param.Name] = param.Literal
			continue
		}

		dep, ok := g.Get(param.Binding)
		if !ok {
			return nil, zerr.With(domain.ErrUnknownProvider, "provider", param.Binding.String())
		}

		v, err := e.resolveBound(ctx, tr, g, dep, values)
		if err != nil {
			return nil, err
		}
		params[param.Name] = v
	}
	return params, nil
}

// resolveBound resolves a nested provider inside its own disable scope.
func (e *Evaluator) resolveBound(
	ctx context.Context,
	tr *tracker.Tracker,
	g *domain.Graph,
	dep domain.Provider,
	values map[domain.InternedString]string,
) (v string, err error) {
	scope := tr.Disable()
	defer scope.Release()
	return e.resolve(ctx, tr, g, dep, values)
}

// obtain reads the provider's source under a fresh disable scope. The reads
// still funnel through the tracker; the open scope is what keeps them out of
// the record. params is accepted for parity with the provider contract even
// though the built-in kinds only consume it indirectly via fingerprinting.
func (e *Evaluator) obtain(tr *tracker.Tracker, p domain.Provider, _ map[string]string) (v string, err error) {
	scope := tr.Disable()
	defer scope.Release()

	var obs domain.Observation
	switch p.Kind {
	case domain.ProviderEnv:
		v, obs = e.sources.ObserveEnv(p.Key)
	case domain.ProviderFile:
		v, obs, err = e.sources.ObserveFile(p.Key)
	case domain.ProviderProperty:
		v, obs, err = e.props.Bump(p.Key)
	default:
		return "", zerr.With(domain.ErrInvalidProviderKind, "kind", string(p.Kind))
	}
	if err != nil {
		return "", err
	}

	tr.Record(obs)
	return v, nil
}
