package main

import (
	"github.com/kodecamp/greet/server"
)

func main() {
	server.Run()
}
