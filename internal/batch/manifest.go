// Package batch analyzes a manifest of room photos offline and writes a YAML report.
package batch

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// Row is one photo to analyze
type Row struct {
	ID        string `json:"id" parquet:"id"`
	ImagePath string `json:"image_path" parquet:"image_path"`
	Context   string `json:"context,omitempty" parquet:"context,optional"`
	Query     string `json:"query,omitempty" parquet:"query,optional"`
}

// Loader reads a manifest in JSONL or Parquet form
type Loader struct {
	manifestPath string
}

// NewLoader creates a new manifest loader
func NewLoader(manifestPath string) *Loader {
	return &Loader{
		manifestPath: manifestPath,
	}
}

// Load reads every row. limit > 0 stops after that many rows.
func (l *Loader) Load(limit int) ([]Row, error) {
	ext := strings.ToLower(filepath.Ext(l.manifestPath))

	var (
		rows []Row
		err  error
	)
	switch ext {
	case ".parquet":
		rows, err = l.loadParquet(limit)
	case ".jsonl", ".json":
		rows, err = l.loadJSONL(limit)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
	if err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].ImagePath == "" {
			return nil, fmt.Errorf("row %d (%s) has no image_path", i+1, rows[i].ID)
		}
		if rows[i].ID == "" {
			rows[i].ID = strings.TrimSuffix(filepath.Base(rows[i].ImagePath), filepath.Ext(rows[i].ImagePath))
		}
	}

	slog.Debug("Manifest loaded", "path", l.manifestPath, "rows", len(rows))
	return rows, nil
}

// Dir is the directory relative image paths are resolved against
func (l *Loader) Dir() string {
	return filepath.Dir(l.manifestPath)
}

func (l *Loader) loadJSONL(limit int) ([]Row, error) {
	file, err := os.Open(l.manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer file.Close()

	var rows []Row
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var row Row
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}
		rows = append(rows, row)

		if limit > 0 && len(rows) >= limit {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	return rows, nil
}

func (l *Loader) loadParquet(limit int) ([]Row, error) {
	file, err := os.Open(l.manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Row](pf)
	defer reader.Close()

	var rows []Row
	batch := make([]Row, 128)
	for {
		n, err := reader.Read(batch)
		rows = append(rows, batch[:n]...)
		if limit > 0 && len(rows) >= limit {
			return rows[:limit], nil
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return rows, nil
}
