package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/cascadews/cascade.go/contrib/cascadedump"
)

func main() {
	// Environment first, flags override
	config := cascadedump.NewConfig()
	if err := cleanenv.ReadEnv(config); err != nil {
		log.Fatal(err)
	}

	flag.StringVar(&config.URL, "url", config.URL, "Cascade instance URL")
	flag.StringVar(&config.Username, "username", config.Username, "Authentication username")
	flag.StringVar(&config.Password, "password", config.Password, "Authentication password")
	flag.StringVar(&config.APIKey, "api-key", config.APIKey, "API key, used instead of username and password")
	flag.StringVar(&config.Site, "site", config.Site, "Site to dump (required)")
	flag.StringVar(&config.Root, "root", config.Root, "Path of the folder to start from")
	flag.StringVar(&config.Output, "output", config.Output, "Output file path (required)")
	flag.StringVar(&config.Dir, "dir", config.Dir, "Base directory for dumps (prefixes output path)")
	flag.DurationVar(&config.Timeout, "timeout", config.Timeout, "Request timeout")
	flag.BoolVar(&config.Verbose, "verbose", config.Verbose, "Enable verbose logging")

	header := "Environment variables:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), config, &header, flag.Usage)
	flag.Parse()

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if err := cascadedump.Do(context.Background(), config); err != nil {
		log.Fatal(err)
	}
}
