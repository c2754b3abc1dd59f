// Command example wires up a small forge server demonstrating exact
// match, parameter capture, and literal-over-parameter precedence.
// Mirrors bolt/examples/hello/main.go's structure.
package main

import (
	"log"

	"github.com/watt-toolkit/forge"
)

func main() {
	router := forge.NewRouter()

	router.Get("/ping", func(r *forge.RequestView) (forge.Response, error) {
		return forge.NewResponse(forge.StatusOK).Text("pong!"), nil
	})

	router.Get("/users/all", func(r *forge.RequestView) (forge.Response, error) {
		return forge.NewResponse(forge.StatusOK).JSON(map[string]string{"scope": "all"}), nil
	})

	router.Get("/users/:id", func(r *forge.RequestView) (forge.Response, error) {
		id, _ := r.Param("id")
		if id == "" {
			return forge.Response{}, forge.NewHTTPError(forge.StatusBadRequest, "missing id")
		}
		return forge.NewResponse(forge.StatusOK).JSON(map[string]string{"id": id}), nil
	})

	router.Get("/store/:store_id/customer/:customer_id", func(r *forge.RequestView) (forge.Response, error) {
		storeID, _ := r.Param("store_id")
		customerID, _ := r.Param("customer_id")
		return forge.NewResponse(forge.StatusOK).JSON(map[string]string{
			"store_id":    storeID,
			"customer_id": customerID,
		}), nil
	})

	cfg, err := forge.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := forge.NewLogger(cfg.LogLevel, "")
	stats := forge.NewStats("example")

	ln := forge.NewListener(router, forge.Options{
		Host:   cfg.Host,
		Port:   cfg.Port,
		Logger: logger,
		Stats:  stats,
	})

	log.Printf("forge example listening on %s", cfg.Addr())
	if err := ln.Listen(); err != nil {
		log.Fatal(err)
	}
}
