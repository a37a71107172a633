// Package sources implements tracked read access to files and environment
// variables.
package sources

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Sources = (*Reader)(nil)

// Reader implements ports.Sources against the real filesystem and process
// environment. Observed values are hashed with xxhash so observations stay
// comparable across runs without persisting raw content.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ObserveFile reads the file at path and returns its content with a
// content-hash observation. The observation identity is the cleaned path.
func (r *Reader) ObserveFile(path string) (string, domain.Observation, error) {
	clean := filepath.Clean(path)

	data, err := os.ReadFile(clean) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", domain.Observation{}, zerr.With(zerr.Wrap(err, domain.ErrInputNotFound.Error()), "path", clean)
	}

	obs := domain.Observation{
		Kind:      domain.SourceFile,
		ID:        filepath.ToSlash(clean),
		ValueHash: hashBytes(data),
	}
	return string(data), obs, nil
}

// ObserveEnv reads the environment variable with the given name. The hash
// covers a presence byte so an unset variable observes differently from one
// set to the empty string.
func (r *Reader) ObserveEnv(name string) (string, domain.Observation) {
	value, ok := os.LookupEnv(name)

	digest := xxhash.New()
	if ok {
		_, _ = digest.Write([]byte{1})
	} else {
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.WriteString(value)

	obs := domain.Observation{
		Kind:      domain.SourceEnv,
		ID:        name,
		ValueHash: fmt.Sprintf("%016x", digest.Sum64()),
	}
	return value, obs
}

func hashBytes(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
