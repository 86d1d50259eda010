package shufflebag

// Engine indicates priority container implementation.
type Engine uint8

const (
	// EngineHeap is a default engine based on array-backed binary heap.
	EngineHeap Engine = iota
	// EngineBTree keeps pairs in B-tree (github.com/google/btree).
	// Works a bit slower than heap, but has no big reallocations on grow.
	EngineBTree
)

func (e Engine) String() string {
	switch e {
	case EngineHeap:
		return "heap"
	case EngineBTree:
		return "btree"
	default:
		return "unknown"
	}
}
