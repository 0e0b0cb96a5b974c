package main

import (
	"flag"
	"log"

	"github.com/km1000101/the-Editors-hub/internal/di"
	"github.com/km1000101/the-Editors-hub/internal/structures"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	flags := &structures.CliFlags{
		ConfigPath: *configPath,
		DebugMode:  *debug,
	}

	_, err := di.InitApp(flags)
	if err != nil {
		log.Fatalf("failed to start: %s", err)
	}
}
