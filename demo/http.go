package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/koykov/shufflebag"
	"github.com/koykov/shufflebag/metrics/prometheus"
	"github.com/koykov/shufflebag/rng"
)

type BagHTTP struct {
	mux  sync.RWMutex
	pool map[string]*demoBag
}

func NewBagHTTP() *BagHTTP {
	h := &BagHTTP{
		pool: make(map[string]*demoBag),
	}
	return h
}

func (h *BagHTTP) get(key string) *demoBag {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.pool[key]
}

func (h *BagHTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		key string
		d   *demoBag
	)

	if key = r.FormValue("key"); len(key) == 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if d = h.get(key); d == nil && r.URL.Path != "/api/v1/init" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/v1/status":
		h.write(w, http.StatusOK, []byte(d.String()))
	case r.URL.Path == "/api/v1/push":
		d.push(r.FormValue("value"))
		h.write(w, http.StatusOK, []byte(d.String()))
	case r.URL.Path == "/api/v1/pop":
		var resp ResponsePop
		resp.Value, resp.Found = d.pop()
		b, _ := json.Marshal(resp)
		h.write(w, http.StatusOK, b)
	case r.URL.Path == "/api/v1/init":
		if d != nil {
			w.WriteHeader(http.StatusNotAcceptable)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Println("err", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var req RequestInit
		if err = json.Unmarshal(body, &req); err != nil {
			log.Println("err", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		conf := shufflebag.Config{
			Key:           key,
			Capacity:      len(req.Values),
			MetricsWriter: prometheus.NewWriter(key),
			Logger:        log.Default(),
		}
		if req.Engine == shufflebag.EngineBTree.String() {
			conf.Engine = shufflebag.EngineBTree
		}
		if req.Seed != nil {
			conf.Source = rng.NewUint64(*req.Seed)
		}
		d = &demoBag{
			key:    key,
			engine: conf.Engine,
			seeded: req.Seed != nil,
			bag:    shufflebag.NewWithConfig[string](conf),
		}
		if req.Refill {
			d.refill = req.Values
		}
		for i := 0; i < len(req.Values); i++ {
			d.bag.Push(req.Values[i])
		}

		h.mux.Lock()
		h.pool[key] = d
		h.mux.Unlock()

		h.write(w, http.StatusOK, []byte(d.String()))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *BagHTTP) write(w http.ResponseWriter, status int, body []byte) {
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Println("err", err)
	}
}
