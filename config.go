package shufflebag

import "github.com/koykov/shufflebag/rng"

const (
	// Default B-tree degree for EngineBTree.
	defaultBTreeDegree = 32
	// Minimal degree accepted by github.com/google/btree.
	minBTreeDegree = 2
)

// Config describes bag properties and behavior.
type Config struct {
	// Unique bag key. Indicates bag in logs and metrics.
	// If this param omit random xid will use instead.
	Key string
	// Engine of priority container.
	// If this param omit EngineHeap will use instead.
	Engine Engine
	// Initial capacity of the engine. Bag grows beyond it on demand.
	Capacity int
	// B-tree degree. Works only with EngineBTree.
	// If this param omit defaultBTreeDegree (32) will use instead.
	BTreeDegree int

	// Source of priorities.
	// Must return uniform values in [0, 1) and never NaN.
	// If this param omit entropy seeded rng.Rand will use instead. Bag owns the source, so don't share it
	// between bags.
	Source rng.Source

	// Metrics writer handler.
	MetricsWriter MetricsWriter

	// Logger handler.
	Logger Logger
}

// Copy copies config instance to protect bag from changing params after start.
// It means that after bag init all config modifications will have no effect.
func (c *Config) Copy() *Config {
	cpy := *c
	return &cpy
}
