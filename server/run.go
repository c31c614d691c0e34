package server

import (
	"fmt"
	"log"
	"net/http"
)

const GreetingServerPort = 80

func Run() {
	log.SetFlags(log.LstdFlags) // adds time to the log

	log.Printf("Starting greeting server on %d\n", GreetingServerPort)
	err := serve(fmt.Sprintf(":%d", GreetingServerPort))
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed to listen: %s\n", err)
	}
}

func serve(addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: newMux(),
	}
	return srv.ListenAndServe()
}
