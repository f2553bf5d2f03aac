package main

import (
	"log"
	"os"

	"github.com/jakebark/albumdir/internal/config"
	"github.com/jakebark/albumdir/internal/core"
	"github.com/jakebark/albumdir/internal/inputs"
)

func main() {
	log.SetFlags(0) // remove timestamp from prints

	userInput := inputs.ParseFlags()

	if err := core.ProcessDirectory(userInput, config.OutputFilename, os.Stdout); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
