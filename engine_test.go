package shufflebag

import (
	"sort"
	"testing"

	"github.com/koykov/shufflebag/rng"
)

func TestEngine(t *testing.T) {
	mk := func(e Engine) engine[int] {
		conf := Config{Capacity: 16, BTreeDegree: 4}
		var eng engine[int]
		switch e {
		case EngineBTree:
			eng = &btreeEngine[int]{}
		default:
			eng = &heap[int]{}
		}
		eng.init(&conf)
		return eng
	}
	for _, e := range engines {
		t.Run(e.String(), func(t *testing.T) {
			eng := mk(e)
			if _, ok := eng.pop(); ok {
				t.Errorf("pop from empty engine")
			}
			r := rng.NewUint64(3)
			prior := make([]float64, 0, 500)
			for i := 0; i < 500; i++ {
				p := r.Float64()
				prior = append(prior, p)
				eng.push(pair[int]{value: i, priority: p})
			}
			if eng.size() != 500 {
				t.Errorf("size mismatch: need %d, got %d", 500, eng.size())
			}
			sort.Sort(sort.Reverse(sort.Float64Slice(prior)))
			for i := 0; i < len(prior); i++ {
				p, ok := eng.pop()
				if !ok {
					t.Fatalf("pop #%d: no value", i)
				}
				if p.priority != prior[i] {
					t.Fatalf("pop #%d: priority mismatch: need %f, got %f", i, prior[i], p.priority)
				}
			}
			if eng.size() != 0 {
				t.Errorf("engine isn't empty")
			}
		})
	}
}

func TestEngineString(t *testing.T) {
	stages := []struct {
		e   Engine
		str string
	}{
		{EngineHeap, "heap"},
		{EngineBTree, "btree"},
		{Engine(7), "unknown"},
	}
	for _, stage := range stages {
		if s := stage.e.String(); s != stage.str {
			t.Errorf("string mismatch: need %s, got %s", stage.str, s)
		}
	}
}
