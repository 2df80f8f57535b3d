package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-raycaster/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of XML scene files to offer")
	flag.Parse()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("Ray Caster Web Server")
	log.Printf("Serving scenes from %s; try http://localhost:%d/api/scenes", *scenesDir, *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
