package generator

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// xlsxHeader is the single-sheet export layout; the nested questions and
// themes columns carry JSON-serialized lists.
var xlsxHeader = []string{
	"callid", "filename", "timestamp", "agent", "account_id", "total_call_time",
	"primary_reason", "call_type", "call_category", "call_outcome",
	"questions", "themes", "sentiment_score", "food_program",
}

// WriteJSONL writes one record per line.
func WriteJSONL(path string, records []CallRecord) error {
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}

// WriteJSON writes all records as one indented JSON array.
func WriteJSON(path string, records []CallRecord) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	f, err := createWithParents(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteXLSX writes a single "calls" sheet with a header row.
func WriteXLSX(path string, records []CallRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := "calls"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(xlsxHeader))
	for i, h := range xlsxHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		questions, err := json.Marshal(rec.Questions)
		if err != nil {
			return fmt.Errorf("marshal questions: %w", err)
		}
		themes, err := json.Marshal(rec.Themes)
		if err != nil {
			return fmt.Errorf("marshal themes: %w", err)
		}
		row := []any{
			rec.CallID, rec.Filename, rec.Timestamp, rec.Agent, rec.AccountID,
			rec.TotalCallTime, rec.PrimaryReason, rec.CallType, rec.CallCategory,
			rec.CallOutcome, string(questions), string(themes),
			rec.SentimentScore, rec.FoodProgram,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func createWithParents(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}
