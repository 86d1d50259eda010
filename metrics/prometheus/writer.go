package prometheus

import (
	"github.com/koykov/shufflebag"
	"github.com/prometheus/client_golang/prometheus"
)

// Writer is a Prometheus implementation of shufflebag.MetricsWriter.
type Writer struct {
	name string
}

var (
	bagSize                  *prometheus.GaugeVec
	bagPush, bagPop, bagMiss *prometheus.CounterVec
	bagPriority              *prometheus.HistogramVec
	_                        shufflebag.MetricsWriter = (*Writer)(nil)
)

func init() {
	bagSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "shufflebag_size",
		Help: "Actual bag size.",
	}, []string{"bag"})

	bagPush = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shufflebag_push",
		Help: "How many items comes to the bag.",
	}, []string{"bag"})
	bagPop = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shufflebag_pop",
		Help: "How many items leaves the bag.",
	}, []string{"bag"})
	bagMiss = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shufflebag_miss",
		Help: "How many pops from empty bag occurs.",
	}, []string{"bag"})

	// Priorities must be uniform, so skewed buckets indicate broken source.
	bagPriority = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shufflebag_priority",
		Help:    "Distribution of drawn priorities.",
		Buckets: prometheus.LinearBuckets(.1, .1, 9),
	}, []string{"bag"})

	prometheus.MustRegister(bagSize, bagPush, bagPop, bagMiss, bagPriority)
}

func NewWriter(name string) *Writer {
	return &Writer{name: name}
}

func (w Writer) BagPush(priority float64) {
	bagPush.WithLabelValues(w.name).Inc()
	bagSize.WithLabelValues(w.name).Inc()
	bagPriority.WithLabelValues(w.name).Observe(priority)
}

func (w Writer) BagPop() {
	bagPop.WithLabelValues(w.name).Inc()
	bagSize.WithLabelValues(w.name).Dec()
}

func (w Writer) BagMiss() {
	bagMiss.WithLabelValues(w.name).Inc()
}
