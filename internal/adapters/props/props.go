// Package props implements the mutable side-state properties file.
//
// The file exists to manufacture an observable side effect: Bump rewrites it
// on every evaluation. A correct tracker keeps that write out of the input
// record; a leaky one turns it into a cache input that is stale on every run.
package props

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PropertyStore = (*Store)(nil)

// Store implements ports.PropertyStore using a key=value properties file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a PropertyStore backed by the file at the given path.
// The file and its directory are created lazily on the first Bump.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Observe reads the current value of key without mutating anything.
// A missing file or key observes as absent.
func (s *Store) Observe(key string) (string, domain.Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", domain.Observation{}, err
	}

	value, ok := values[key]
	return value, observation(key, value, ok), nil
}

// Bump increments the counter stored under key and persists the file.
// A missing or non-numeric value counts as zero.
func (s *Store) Bump(key string) (string, domain.Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", domain.Observation{}, err
	}

	current, _ := strconv.Atoi(values[key])
	next := strconv.Itoa(current + 1)
	values[key] = next

	if err := s.save(values); err != nil {
		return "", domain.Observation{}, err
	}

	return next, observation(key, next, true), nil
}

func (s *Store) load() (map[string]string, error) {
	values := make(map[string]string)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return values, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStateReadFailed.Error()), "path", s.path)
	}

	for line := range strings.Lines(string(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return values, nil
}

func (s *Store) save(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateCreateFailed.Error()), "path", dir)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(values[k])
		b.WriteByte('\n')
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, []byte(b.String()), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// observation hashes a property value with a presence byte, so an absent key
// observes differently from one set to the empty string.
func observation(key, value string, present bool) domain.Observation {
	digest := xxhash.New()
	if present {
		_, _ = digest.Write([]byte{1})
	} else {
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.WriteString(value)

	return domain.Observation{
		Kind:      domain.SourceProperty,
		ID:        key,
		ValueHash: fmt.Sprintf("%016x", digest.Sum64()),
	}
}
