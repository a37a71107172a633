package domain

// Manifest is the loaded provider configuration: the validated binding graph
// plus the file inputs tracked at the top level of an evaluation.
type Manifest struct {
	// Graph is the validated provider binding graph.
	Graph *Graph
	// ConfigPath is the path of the configuration file the manifest was
	// loaded from. The config file is itself a tracked input.
	ConfigPath string
	// TrackedInputs are file paths declared in the configuration that the
	// evaluation observes with tracking enabled.
	TrackedInputs []string
}
