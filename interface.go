package shufflebag

// Interface describes shuffle bag interface.
type Interface[T any] interface {
	// Push puts value to the bag.
	Push(value T)
	// Pop takes random value from the bag.
	// Returns false if bag is empty.
	Pop() (T, bool)
	// Len returns actual number of values in the bag.
	Len() int
	// IsEmpty reports whether bag has no values.
	IsEmpty() bool
}

// Priority container engine.
type engine[T any] interface {
	init(config *Config)
	push(p pair[T])
	pop() (pair[T], bool)
	size() int
}

// Value with its priority.
type pair[T any] struct {
	value    T
	priority float64
}

var _ Interface[int] = (*Bag[int])(nil)
