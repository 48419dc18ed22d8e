// Package pipeline orchestrates discovery, reading, validation, extraction
// and the final CSV write for one run.
package pipeline

import (
	"strings"

	"github.com/sirupsen/logrus"

	"call-etl-go/internal/aggregator"
	"call-etl-go/internal/csvout"
	"call-etl-go/internal/discover"
	"call-etl-go/internal/extract"
	"call-etl-go/internal/logger"
	"call-etl-go/internal/reader"
	"call-etl-go/internal/schema"
)

const (
	DefaultOutputDir      = "/output/tableStructureed"
	DefaultOutputFilename = "calls.csv"
)

// Counters tracks per-run record accounting. Seen = Written + Skipped.
// Lines that never parse into a record are not counted as seen.
type Counters struct {
	Seen    int
	Written int
	Skipped int
}

// Result is the artifact of one run.
type Result struct {
	OutputPath string
	Counters   Counters
	Insight    aggregator.Insight
}

// Run processes every JSON/JSONL file under inputDir into one CSV at
// outputDir/filename. A bad record or file is logged and skipped; only a
// missing input directory aborts the run.
func Run(inputDir, outputDir, filename string, log *logger.Logger) (Result, error) {
	plog := log.WithComponent("pipeline")

	files, err := discover.Files(inputDir)
	if err != nil {
		return Result{}, err
	}
	plog.WithFields(logrus.Fields{"input_dir": inputDir, "files": len(files)}).Info("scanning for JSON/JSONL")

	var rows [][]any
	var c Counters
	for _, path := range files {
		flog := plog.WithField("file", path)
		flog.Info("reading file")
		for rec := range reader.Records(path, flog) {
			c.Seen++
			res := schema.Validate(rec)
			if !res.Valid {
				c.Skipped++
				flog.WithField("errors", strings.Join(res.Errors, "; ")).Warn("schema validation failed for record")
				continue
			}
			row, err := extract.Row(rec)
			if err != nil {
				c.Skipped++
				flog.WithError(err).Warn("failed to extract row")
				continue
			}
			rows = append(rows, row)
		}
	}

	outPath, err := csvout.Write(rows, outputDir, filename)
	if err != nil {
		return Result{}, err
	}
	c.Written = len(rows)

	ins := aggregator.Aggregate(rows)
	plog.WithFields(logrus.Fields{
		"rows":    c.Written,
		"skipped": c.Skipped,
		"seen":    c.Seen,
		"output":  outPath,
	}).Info("wrote CSV")
	plog.WithFields(logrus.Fields{
		"by_call_type": ins.ByCallType,
		"by_outcome":   ins.ByOutcome,
		"by_emotion":   ins.ByEmotion,
	}).Debug("batch insight")

	return Result{OutputPath: outPath, Counters: c, Insight: ins}, nil
}
