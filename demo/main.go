package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var addr = flag.String("addr", ":8080", "HTTP listen address")

func main() {
	flag.Parse()

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", NewBagHTTP())
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    *addr,
		Handler: mux,
	}
	log.Printf("listen %s\n", *addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("err", err)
	}
}
