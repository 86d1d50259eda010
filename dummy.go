package shufflebag

// DummyMetrics is a stub metrics writer handler that uses by default and does nothing.
// Need just to reduce checks in code.
type DummyMetrics struct{}

func (DummyMetrics) BagPush(_ float64) {}
func (DummyMetrics) BagPop()           {}
func (DummyMetrics) BagMiss()          {}
