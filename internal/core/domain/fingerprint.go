package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a snapshot of a provider's declared parameters, rendered as
// a 16-hex-digit xxhash. It is computed from the declared shape of the graph
// only; nothing a provider reads or writes while being obtained ever
// contributes to it.
type Fingerprint string

// Fingerprints computes the fingerprint of every provider in the graph.
// A bound parameter contributes the bound provider's fingerprint, so a
// change anywhere in a provider's declared dependency chain changes its own
// fingerprint. Validate must have been called first.
func (g *Graph) Fingerprints() (map[InternedString]Fingerprint, error) {
	if len(g.resolutionOrder) != len(g.providers) {
		return nil, ErrGraphNotValidated
	}

	fps := make(map[InternedString]Fingerprint, len(g.providers))
	for _, name := range g.resolutionOrder {
		p := g.providers[name]
		fps[name] = fingerprintProvider(&p, fps)
	}
	return fps, nil
}

// fingerprintProvider hashes the declared shape of a single provider.
// Resolution order guarantees every binding's fingerprint is already in fps.
func fingerprintProvider(p *Provider, fps map[InternedString]Fingerprint) Fingerprint {
	digest := xxhash.New()

	_, _ = digest.WriteString(string(p.Kind))
	_, _ = digest.Write([]byte{0})
	_, _ = digest.WriteString(p.Key)
	_, _ = digest.Write([]byte{0})

	// Sort parameter slots for determinism.
	params := make([]Param, len(p.Params))
	copy(params, p.Params)
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })

	for _, param := range params {
		_, _ = digest.WriteString(param.Name)
		_, _ = digest.Write([]byte{'='})
		if param.IsBound() {
			_, _ = digest.WriteString(string(fps[param.Binding]))
		} else {
			_, _ = digest.WriteString(param.Literal)
		}
		_, _ = digest.Write([]byte{0})
	}

	return Fingerprint(fmt.Sprintf("%016x", digest.Sum64()))
}
