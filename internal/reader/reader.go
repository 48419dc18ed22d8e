// Package reader parses one input file into a sequence of raw records.
package reader

import (
	"bufio"
	"encoding/json"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxLineBytes bounds a single JSONL line; records are small flat objects.
const maxLineBytes = 4 * 1024 * 1024

// Records returns the raw records found in path. Each call re-opens the
// file, so the sequence is restartable. Parse failures are isolated at the
// smallest unit: a bad JSONL line or a non-object array element is logged
// and skipped, a whole-file parse failure yields nothing.
func Records(path string, log *logrus.Entry) iter.Seq[map[string]any] {
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return jsonlRecords(path, log)
	}
	return jsonRecords(path, log)
}

func jsonlRecords(path string, log *logrus.Entry) iter.Seq[map[string]any] {
	return func(yield func(map[string]any) bool) {
		f, err := os.Open(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Error("failed reading file")
			return
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 64*1024), maxLineBytes)
		lineno := 0
		for sc.Scan() {
			lineno++
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			var v any
			if err := json.Unmarshal([]byte(line), &v); err != nil {
				log.WithError(err).WithFields(logrus.Fields{"file": path, "line": lineno}).Error("invalid JSON line")
				continue
			}
			obj, ok := v.(map[string]any)
			if !ok {
				log.WithFields(logrus.Fields{"file": path, "line": lineno}).Warn("expected JSON object")
				continue
			}
			if !yield(obj) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			log.WithError(err).WithField("file", path).Error("failed reading file")
		}
	}
}

func jsonRecords(path string, log *logrus.Entry) iter.Seq[map[string]any] {
	return func(yield func(map[string]any) bool) {
		b, err := os.ReadFile(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Error("failed reading file")
			return
		}
		var v any
		if err := json.Unmarshal(b, &v); err != nil {
			log.WithError(err).WithField("file", path).Error("invalid JSON file")
			return
		}
		switch data := v.(type) {
		case map[string]any:
			yield(data)
		case []any:
			for idx, elem := range data {
				obj, ok := elem.(map[string]any)
				if !ok {
					log.WithFields(logrus.Fields{"file": path, "index": idx + 1}).Warn("expected JSON object in array")
					continue
				}
				if !yield(obj) {
					return
				}
			}
		default:
			log.WithField("file", path).Warn("top-level JSON is not object or array; skipping")
		}
	}
}
