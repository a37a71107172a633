package config

// Cachetfile represents the structure of the cachet.yaml configuration file.
type Cachetfile struct {
	Version   string                 `yaml:"version"`
	Inputs    []string               `yaml:"inputs"`
	Providers map[string]ProviderDTO `yaml:"providers"`
}

// ProviderDTO represents a provider definition in the configuration.
type ProviderDTO struct {
	Source string              `yaml:"source"`
	Key    string              `yaml:"key"`
	Params map[string]ParamDTO `yaml:"params"`
}

// ParamDTO represents a parameter slot: either a literal value or a binding
// to another provider.
type ParamDTO struct {
	Value    string `yaml:"value"`
	Provider string `yaml:"provider"`
}
