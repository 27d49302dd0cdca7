package main

import (
	"flag"

	"civictrack/backend/server"

	"github.com/apex/log"
)

func main() {
	flag.Parse()
	log.Info("Hello!")
	server.StartService()
	log.Info("Bye!")
}
