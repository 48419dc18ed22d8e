package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"call-etl-go/internal/generator"
	"call-etl-go/internal/logger"
)

func main() {
	_ = godotenv.Load() // loads .env

	configPath := flag.String("config", "", "Optional YAML config (rows, seed, format, out)")
	rows := flag.Int("rows", 0, "Number of records to generate (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed (overrides config)")
	format := flag.String("format", "", "Output format: jsonl|json|xlsx (overrides config)")
	out := flag.String("out", "", "Output file path (overrides config)")
	logLevel := flag.String("log-level", "", "Logging level (debug|info|warn|error)")
	flag.Parse()

	log := logger.New()
	if *logLevel != "" {
		log.SetLevel(*logLevel)
	}
	glog := log.WithComponent("gencalls")

	cfg := generator.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = generator.LoadConfig(*configPath)
		if err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *out != "" {
		cfg.Out = *out
	}

	glog.WithField("rows", cfg.Rows).WithField("seed", cfg.Seed).Info("generating call records")
	records := generator.New(cfg.Seed).Records(cfg.Rows)

	var err error
	switch cfg.Format {
	case "jsonl":
		err = generator.WriteJSONL(cfg.Out, records)
	case "json":
		err = generator.WriteJSON(cfg.Out, records)
	case "xlsx":
		err = generator.WriteXLSX(cfg.Out, records)
	default:
		fmt.Fprintf(os.Stderr, "unsupported format %q\n", cfg.Format)
		os.Exit(2)
	}
	if err != nil {
		log.WithError(err).Fatal("failed to write records")
	}

	glog.WithField("output", cfg.Out).Info("done")
	fmt.Println(cfg.Out)
}
