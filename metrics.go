package shufflebag

// MetricsWriter is an interface of bag metrics handler.
// See metrics/ sub-packages for implementations.
type MetricsWriter interface {
	// BagPush registers item came to the bag with given priority.
	BagPush(priority float64)
	// BagPop registers item left the bag.
	BagPop()
	// BagMiss registers pop attempt from empty bag.
	BagMiss()
}
