package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/sources"
	"go.trai.ch/cachet/internal/core/domain"
)

func TestObserveFile_HashesContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "manifest.txt")
	require.NoError(t, os.WriteFile(path, []byte("channel=stable\n"), 0o644))

	r := sources.NewReader()

	content, obs, err := r.ObserveFile(path)
	require.NoError(t, err)
	require.Equal(t, "channel=stable\n", content)
	require.Equal(t, domain.SourceFile, obs.Kind)
	require.Len(t, obs.ValueHash, 16)

	// Same content observes the same hash.
	_, again, err := r.ObserveFile(path)
	require.NoError(t, err)
	require.Equal(t, obs.ValueHash, again.ValueHash)

	// Changed content observes a different hash.
	require.NoError(t, os.WriteFile(path, []byte("channel=nightly\n"), 0o644))
	_, changed, err := r.ObserveFile(path)
	require.NoError(t, err)
	require.NotEqual(t, obs.ValueHash, changed.ValueHash)
}

func TestObserveFile_Missing(t *testing.T) {
	r := sources.NewReader()

	_, _, err := r.ObserveFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestObserveEnv_DistinguishesUnsetFromEmpty(t *testing.T) {
	r := sources.NewReader()

	const name = "CACHET_TEST_OBSERVE_ENV"

	_, unset := r.ObserveEnv(name)

	t.Setenv(name, "")
	_, empty := r.ObserveEnv(name)

	t.Setenv(name, "stable")
	value, set := r.ObserveEnv(name)

	require.Equal(t, "stable", value)
	require.Equal(t, domain.SourceEnv, set.Kind)
	require.NotEqual(t, unset.ValueHash, empty.ValueHash)
	require.NotEqual(t, empty.ValueHash, set.ValueHash)
}
