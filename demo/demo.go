package main

import (
	"encoding/json"
	"sync"

	"github.com/koykov/shufflebag"
)

// Bag isn't thread-safe, so demo guards the whole bag with single mutex.
type demoBag struct {
	mux    sync.Mutex
	key    string
	engine shufflebag.Engine
	seeded bool
	refill []string
	bag    *shufflebag.Bag[string]
}

func (d *demoBag) push(value string) {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.bag.Push(value)
}

func (d *demoBag) pop() (string, bool) {
	d.mux.Lock()
	defer d.mux.Unlock()
	if d.bag.IsEmpty() {
		for i := 0; i < len(d.refill); i++ {
			d.bag.Push(d.refill[i])
		}
	}
	return d.bag.Pop()
}

func (d *demoBag) String() string {
	d.mux.Lock()
	resp := ResponseStatus{
		Key:    d.key,
		Size:   d.bag.Len(),
		Engine: d.engine.String(),
		Seeded: d.seeded,
		Refill: len(d.refill) > 0,
	}
	d.mux.Unlock()
	b, _ := json.Marshal(resp)
	return string(b)
}
