package main

import (
	"log"

	"github.com/minaorangina/rivals/server"
	"github.com/minaorangina/rivals/store"
)

func main() {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg)

	log.Printf("Listening on %s...", cfg.Addr)
	log.Fatal(s.ListenAndServe())
}
