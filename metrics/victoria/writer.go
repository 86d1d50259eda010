package victoria

import (
	"github.com/koykov/shufflebag"
	"github.com/koykov/vmchain"
)

// writer is a VictoriaMetrics implementation of shufflebag.MetricsWriter.
type writer struct {
	name    string
	noprior bool
}

// NewWriter makes a new instance of metrics writer.
func NewWriter(name string, options ...Option) shufflebag.MetricsWriter {
	mw := &writer{name: name}
	for _, fn := range options {
		fn(mw)
	}
	return mw
}

func (w writer) BagPush(priority float64) {
	vmchain.Counter("shufflebag_push").WithLabel("bag", w.name).Inc()
	vmchain.Gauge("shufflebag_size", nil).WithLabel("bag", w.name).Inc()
	if !w.noprior {
		vmchain.Histogram("shufflebag_priority").WithLabel("bag", w.name).Update(priority)
	}
}

func (w writer) BagPop() {
	vmchain.Counter("shufflebag_pop").WithLabel("bag", w.name).Inc()
	vmchain.Gauge("shufflebag_size", nil).WithLabel("bag", w.name).Dec()
}

func (w writer) BagMiss() {
	vmchain.Counter("shufflebag_miss").WithLabel("bag", w.name).Inc()
}
