package main

import (
	"log"

	"github.com/clubshub/clubshub/cmd/server"
	"github.com/clubshub/clubshub/internal/adapters/config"
	setupHTTP "github.com/clubshub/clubshub/internal/adapters/controller/http/setup"

	_ "time/tzdata"
)

func main() {
	cfg := config.Get()

	srv, err := server.New(cfg)
	if err != nil {
		log.Panic(err)
	}

	if err = setupHTTP.Setup(srv); err != nil {
		log.Panic(err)
	}

	if err = srv.Start(); err != nil {
		log.Panic(err)
	}
}
