package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"call-etl-go/internal/logger"
	"call-etl-go/internal/pipeline"
)

func main() {
	_ = godotenv.Load() // loads .env

	outputDir := flag.String("output-dir", envOr("OUTPUT_DIR", pipeline.DefaultOutputDir),
		"Output directory to write the CSV to (will be created)")
	outputFilename := flag.String("output-filename", envOr("OUTPUT_FILENAME", pipeline.DefaultOutputFilename),
		"CSV filename to write inside the output directory")
	logLevel := flag.String("log-level", "", "Logging level (debug|info|warn|error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: callcsv [flags] <input-dir>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	log := logger.New()
	if *logLevel != "" {
		log.SetLevel(*logLevel)
	}
	log.WithField("service", "call-etl-go").Info("starting run")

	res, err := pipeline.Run(flag.Arg(0), *outputDir, *outputFilename, log)
	if err != nil {
		log.WithError(err).Fatal("pipeline failed")
	}
	fmt.Println(res.OutputPath)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
