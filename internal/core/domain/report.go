package domain

// CacheStatus is the configuration-cache validity verdict for a run.
type CacheStatus string

const (
	// CacheValid means the previous snapshot can be reused.
	CacheValid CacheStatus = "valid"
	// CacheStale means the previous snapshot cannot be reused.
	CacheStale CacheStatus = "stale"
)

// RunReport summarizes one evaluation: the cache verdict against the
// previous snapshot, the reasons when stale, and the freshly obtained
// provider values and input record.
type RunReport struct {
	Status CacheStatus
	// Reasons lists why the cache is stale, sorted for stable output.
	// Empty when Status is CacheValid.
	Reasons []string
	// Values maps provider name to the value obtained this run.
	Values map[string]string
	// Inputs is the input record of this run.
	Inputs []Observation
}
