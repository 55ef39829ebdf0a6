package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/tfidx-engine/api"
	"github.com/gcbaptista/tfidx-engine/internal/engine"
)

func main() {
	var (
		help      = flag.Bool("help", false, "Show help message")
		port      = flag.String("port", "8080", "Port to run the server on")
		stopWords = flag.String("stop-words", "", "Comma-separated list of stop-words")
	)

	flag.Parse()

	if *help {
		fmt.Printf("TF-IDF Search Engine\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		return
	}

	var words []string
	if *stopWords != "" {
		words = strings.Split(*stopWords, ",")
	}

	e, err := engine.New(words)
	if err != nil {
		log.Fatalf("failed to construct engine: %v", err)
	}

	router := gin.Default()
	api.SetupRoutes(router, e)

	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
