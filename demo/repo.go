package main

type RequestInit struct {
	Values []string `json:"values"`
	Engine string   `json:"engine"`
	// Optional seed. Makes pops reproducible.
	Seed *uint64 `json:"seed,omitempty"`
	// Refill bag by initial values when it becomes empty.
	Refill bool `json:"refill"`
}

type ResponseStatus struct {
	Key    string `json:"key"`
	Size   int    `json:"size"`
	Engine string `json:"engine"`
	Seeded bool   `json:"seeded"`
	Refill bool   `json:"refill"`
}

type ResponsePop struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}
