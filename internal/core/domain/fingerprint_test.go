package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/core/domain"
)

func fingerprints(t *testing.T, providers ...*domain.Provider) map[domain.InternedString]domain.Fingerprint {
	t.Helper()
	g := domain.NewGraph()
	for _, p := range providers {
		require.NoError(t, g.AddProvider(p))
	}
	require.NoError(t, g.Validate())
	fps, err := g.Fingerprints()
	require.NoError(t, err)
	return fps
}

func TestFingerprints_RequiresValidatedGraph(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddProvider(envProvider("a", "A")))

	_, err := g.Fingerprints()
	require.ErrorIs(t, err, domain.ErrGraphNotValidated)
}

func TestFingerprints_DeterministicAcrossParamOrder(t *testing.T) {
	a := &domain.Provider{
		Name: domain.NewInternedString("p"),
		Kind: domain.ProviderProperty,
		Key:  "k",
		Params: []domain.Param{
			{Name: "x", Literal: "1"},
			{Name: "y", Literal: "2"},
		},
	}
	b := &domain.Provider{
		Name: domain.NewInternedString("p"),
		Kind: domain.ProviderProperty,
		Key:  "k",
		Params: []domain.Param{
			{Name: "y", Literal: "2"},
			{Name: "x", Literal: "1"},
		},
	}

	fpA := fingerprints(t, a)[domain.NewInternedString("p")]
	fpB := fingerprints(t, b)[domain.NewInternedString("p")]
	require.Equal(t, fpA, fpB)
	require.Len(t, string(fpA), 16)
}

func TestFingerprints_LiteralChangeChangesFingerprint(t *testing.T) {
	name := domain.NewInternedString("p")

	base := fingerprints(t, &domain.Provider{
		Name: name, Kind: domain.ProviderProperty, Key: "k",
		Params: []domain.Param{{Name: "channel", Literal: "stable"}},
	})[name]
	other := fingerprints(t, &domain.Provider{
		Name: name, Kind: domain.ProviderProperty, Key: "k",
		Params: []domain.Param{{Name: "channel", Literal: "nightly"}},
	})[name]

	require.NotEqual(t, base, other)
}

// A bound parameter contributes the bound provider's fingerprint, so a change
// to a dependency's declared shape ripples into the dependent's fingerprint
// even though the dependent's own declaration is untouched.
func TestFingerprints_BindingChainRipples(t *testing.T) {
	dependent := boundProvider("build-number", "build.number", "toolchain")

	base := fingerprints(t, envProvider("toolchain", "TOOLCHAIN"), dependent)
	changed := fingerprints(t, envProvider("toolchain", "OTHER_VAR"), dependent)

	name := domain.NewInternedString("build-number")
	require.NotEqual(t, base[name], changed[name])
}

// Fingerprints cover the declared shape only. Two graphs with identical
// declarations fingerprint identically no matter what their providers read
// or wrote at obtain time; this is what keeps side effects out of cache
// validity entirely.
func TestFingerprints_DeclaredShapeOnly(t *testing.T) {
	build := func() map[domain.InternedString]domain.Fingerprint {
		return fingerprints(t,
			envProvider("toolchain", "TOOLCHAIN"),
			boundProvider("build-number", "build.number", "toolchain"),
		)
	}

	require.Equal(t, build(), build())
}
