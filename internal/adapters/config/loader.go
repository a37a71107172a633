// Package config provides the configuration loader for cachet.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"sort"

	"go.trai.ch/cachet/internal/core/domain"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory and returns
// the validated manifest.
func (l *FileConfigLoader) Load(cwd string) (*domain.Manifest, error) {
	name := l.Filename
	if name == "" {
		name = domain.ConfigFileName
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a configuration file from the given path and returns a
// validated domain.Manifest.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Cachetfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	g := domain.NewGraph()

	// Iterate provider names sorted so error reporting is deterministic.
	names := make([]string, 0, len(file.Providers))
	for name := range file.Providers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p, err := toProvider(name, file.Providers[name], file.Providers)
		if err != nil {
			return nil, err
		}
		if err := g.AddProvider(p); err != nil {
			return nil, err
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &domain.Manifest{
		Graph:         g,
		ConfigPath:    path,
		TrackedInputs: canonicalizePaths(file.Inputs),
	}, nil
}

// toProvider maps a DTO to a domain provider, validating the source kind,
// key and parameter slots.
func toProvider(name string, dto ProviderDTO, all map[string]ProviderDTO) (*domain.Provider, error) {
	kind := domain.ProviderKind(dto.Source)
	if !kind.Valid() {
		return nil, zerr.With(zerr.With(domain.ErrInvalidProviderKind, "provider", name), "source", dto.Source)
	}
	if dto.Key == "" {
		return nil, zerr.With(domain.ErrMissingSourceKey, "provider", name)
	}

	params := make([]domain.Param, 0, len(dto.Params))

	// Sorted slot names keep the declared shape deterministic.
	slots := make([]string, 0, len(dto.Params))
	for slot := range dto.Params {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		p := dto.Params[slot]
		switch {
		case p.Provider != "" && p.Value != "":
			return nil, zerr.With(zerr.With(domain.ErrInvalidParam, "provider", name), "param", slot)
		case p.Provider != "":
			if _, ok := all[p.Provider]; !ok {
				return nil, zerr.With(zerr.With(domain.ErrUnknownProvider, "provider", name), "binding", p.Provider)
			}
			params = append(params, domain.Param{Name: slot, Binding: domain.NewInternedString(p.Provider)})
		case p.Value != "":
			params = append(params, domain.Param{Name: slot, Literal: p.Value})
		default:
			return nil, zerr.With(zerr.With(domain.ErrInvalidParam, "provider", name), "param", slot)
		}
	}

	return &domain.Provider{
		Name:   domain.NewInternedString(name),
		Kind:   kind,
		Key:    dto.Key,
		Params: params,
	}, nil
}

// canonicalizePaths sorts and deduplicates the declared input paths.
func canonicalizePaths(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	sorted := make([]string, len(paths))
	copy(sorted, paths)
	slices.Sort(sorted)
	return slices.Compact(sorted)
}
