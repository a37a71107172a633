package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is the dependency graph formed by provider parameter bindings.
type Graph struct {
	providers       map[InternedString]Provider
	resolutionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		providers: make(map[InternedString]Provider),
	}
}

// AddProvider adds a provider to the graph.
// It returns an error if a provider with the same name already exists.
func (g *Graph) AddProvider(p *Provider) error {
	if _, exists := g.providers[p.Name]; exists {
		return zerr.With(ErrProviderAlreadyExists, "provider", p.Name.String())
	}
	g.providers[p.Name] = *p
	return nil
}

// Get returns the provider with the given name.
func (g *Graph) Get(name InternedString) (Provider, bool) {
	p, ok := g.providers[name]
	return p, ok
}

// ProviderCount returns the number of providers in the graph.
func (g *Graph) ProviderCount() int {
	return len(g.providers)
}

// Validate checks that every binding targets a declared provider and that
// bindings form no cycle, using a DFS topological sort. On success it
// populates the resolution order consumed by Walk and Fingerprints.
func (g *Graph) Validate() error {
	g.resolutionOrder = make([]InternedString, 0, len(g.providers))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(name InternedString) error
	visit = func(name InternedString) error {
		visited[name] = 1
		path = append(path, name)

		p, exists := g.providers[name]
		if !exists {
			return zerr.With(ErrUnknownProvider, "provider", name.String())
		}

		for _, param := range p.Params {
			if !param.IsBound() {
				continue
			}
			switch visited[param.Binding] {
			case 1:
				return g.cycleError(path, param.Binding)
			case 0:
				if err := visit(param.Binding); err != nil {
					return err
				}
			}
		}

		visited[name] = 2
		path = path[:len(path)-1]
		g.resolutionOrder = append(g.resolutionOrder, name)
		return nil
	}

	for name := range g.providers {
		if visited[name] == 0 {
			if err := visit(name); err != nil {
				return err
			}
		}
	}

	return nil
}

// cycleError builds an ErrBindingCycle with the offending path as metadata.
func (g *Graph) cycleError(path []InternedString, target InternedString) error {
	start := 0
	for i, node := range path {
		if node == target {
			start = i
			break
		}
	}

	var b strings.Builder
	for _, node := range path[start:] {
		b.WriteString(node.String())
		b.WriteString(" -> ")
	}
	b.WriteString(target.String())

	return zerr.With(ErrBindingCycle, "cycle", b.String())
}

// Walk yields the providers in binding resolution order. Validate must have
// been called; an unvalidated graph yields nothing.
func (g *Graph) Walk() iter.Seq[Provider] {
	return func(yield func(Provider) bool) {
		for _, name := range g.resolutionOrder {
			if !yield(g.providers[name]) {
				return
			}
		}
	}
}
