package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/cachet/internal/adapters/state"
	"go.trai.ch/cachet/internal/core/domain"
)

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Fingerprints: map[string]string{"toolchain": "00000000deadbeef"},
		Inputs: []domain.Observation{
			{Kind: domain.SourceFile, ID: "cachet.yaml", ValueHash: "aaaa"},
		},
		CreatedAt: time.Now(),
	}
}

func TestStore_GetBeforeFirstPut(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)

	snap, err := store.Get()
	require.NoError(t, err)
	require.Nil(t, snap)
}

func TestStore_PutAndGet(t *testing.T) {
	store, err := state.NewStore(filepath.Join(t.TempDir(), "cache", "snapshot.json"))
	require.NoError(t, err)

	require.NoError(t, store.Put(sampleSnapshot()))

	got, err := store.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "00000000deadbeef", got.Fingerprints["toolchain"])
	require.Len(t, got.Inputs, 1)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	first, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(sampleSnapshot()))

	second, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "cachet.yaml", got.Inputs[0].ID)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := state.NewStore(path)
	require.Error(t, err)
}
