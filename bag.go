package shufflebag

import (
	"github.com/koykov/bitset"
	"github.com/koykov/shufflebag/priority"
	"github.com/koykov/shufflebag/rng"
	"github.com/rs/xid"
)

const (
	flagInit = iota
	flagSeeded
)

// Bag is a shuffle bag implementation.
//
// Each pushed value gets independent uniform random priority and pop always takes the value with max priority. Thus
// values pushed together and then popped without interleaving pushes come out in uniformly random order.
// Interleaved pushes and pops give only approximately uniform order.
//
// Zero value is ready to use and equal to New(). Bag isn't thread-safe, protect it by mutex if you need
// concurrent access.
type Bag[T any] struct {
	flags  bitset.Bitset
	config Config
	engine engine[T]
	prior  priority.Random
}

// New makes empty bag seeded from system entropy source.
func New[T any]() *Bag[T] {
	return NewWithConfig[T](Config{})
}

// WithSeed makes empty bag deterministically seeded by exact-width seed.
// Bags with the same seed produce the same pop sequences for the same push sequences.
func WithSeed[T any](seed rng.Seed) *Bag[T] {
	return NewWithConfig[T](Config{Source: rng.NewSeed(seed)})
}

// WithUint64 makes empty bag deterministically seeded by 64-bit integer.
// See rng.ExpandUint64 for seed expansion details.
func WithUint64[T any](seed uint64) *Bag[T] {
	return NewWithConfig[T](Config{Source: rng.NewUint64(seed)})
}

// From makes bag seeded from system entropy source and pushes values to it in given order.
func From[T any](values ...T) *Bag[T] {
	b := NewWithConfig[T](Config{Capacity: len(values)})
	for i := 0; i < len(values); i++ {
		b.Push(values[i])
	}
	return b
}

// NewWithConfig makes empty bag with given config.
func NewWithConfig[T any](config Config) *Bag[T] {
	b := &Bag[T]{config: *config.Copy()}
	b.init()
	return b
}

func (b *Bag[T]) init() {
	c := &b.config

	if len(c.Key) == 0 {
		c.Key = xid.New().String()
	}
	if c.MetricsWriter == nil {
		c.MetricsWriter = DummyMetrics{}
	}
	if c.Source == nil {
		c.Source = rng.NewEntropy()
	}
	if c.Capacity < 0 {
		c.Capacity = 0
	}
	if c.BTreeDegree < minBTreeDegree {
		c.BTreeDegree = defaultBTreeDegree
	}

	switch c.Engine {
	case EngineHeap:
		b.engine = &heap[T]{}
	case EngineBTree:
		b.engine = &btreeEngine[T]{}
	default:
		if b.l() != nil {
			b.l().Printf("bag #%s: %s %d, fallback to %s\n", c.Key, ErrUnknownEngine, c.Engine, EngineHeap)
		}
		c.Engine = EngineHeap
		b.engine = &heap[T]{}
	}
	b.engine.init(c)

	b.prior.Source = c.Source
	var seeded bool
	if d, ok := c.Source.(interface{ Deterministic() bool }); ok {
		seeded = d.Deterministic()
	}
	b.flags.SetBit(flagSeeded, seeded)
	b.flags.SetBit(flagInit, true)

	if b.l() != nil {
		b.l().Printf("bag #%s init: engine %s, seeded %t\n", c.Key, c.Engine, seeded)
	}
}

// Push puts value to the bag with fresh random priority.
func (b *Bag[T]) Push(value T) {
	if !b.flags.CheckBit(flagInit) {
		b.init()
	}
	p := b.eval()
	b.engine.push(pair[T]{value: value, priority: p})
	b.m().BagPush(p)
}

// Pop takes the value with max priority from the bag.
// Returns zero value and false if bag is empty.
func (b *Bag[T]) Pop() (value T, ok bool) {
	if !b.flags.CheckBit(flagInit) {
		return
	}
	var p pair[T]
	if p, ok = b.engine.pop(); !ok {
		b.m().BagMiss()
		return
	}
	b.m().BagPop()
	return p.value, true
}

// Len returns actual number of values in the bag.
func (b *Bag[T]) Len() int {
	if !b.flags.CheckBit(flagInit) {
		return 0
	}
	return b.engine.size()
}

// IsEmpty reports whether bag has no values.
func (b *Bag[T]) IsEmpty() bool {
	return b.Len() == 0
}

// Key returns bag key.
func (b *Bag[T]) Key() string {
	if !b.flags.CheckBit(flagInit) {
		b.init()
	}
	return b.config.Key
}

func (b *Bag[T]) eval() float64 {
	defer func() {
		if r := recover(); r != nil {
			if b.l() != nil {
				b.l().Printf("bag #%s: %v\n", b.k(), r)
			}
			panic(r)
		}
	}()
	return b.prior.Eval()
}

func (b *Bag[T]) k() string {
	return b.config.Key
}

func (b *Bag[T]) m() MetricsWriter {
	return b.config.MetricsWriter
}

func (b *Bag[T]) l() Logger {
	return b.config.Logger
}
