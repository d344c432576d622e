package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"sentwatch/internal/di"
	"sentwatch/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "verbose logging to stdout")
	flag.BoolVar(&flags.Once, "once", false, "run a single watch cycle and exit")
	flag.Parse()

	// Optional .env for webhook tokens and endpoint overrides.
	_ = godotenv.Load()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "sentwatch: %s\n", err)
		os.Exit(1)
	}
}
