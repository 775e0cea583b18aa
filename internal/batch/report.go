package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vibear-app/vibear/internal/analysis"
	"github.com/vibear-app/vibear/internal/furniture"
	"github.com/vibear-app/vibear/internal/models"
	"gopkg.in/yaml.v3"
)

// ReportConfig records how a batch was run
type ReportConfig struct {
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	ManifestPath string `yaml:"manifestpath"`
	SampleSize   int    `yaml:"samplesize"`
	Concurrency  int    `yaml:"concurrency"`
	Timestamp    string `yaml:"timestamp"`
}

// Summary counts outcomes across the batch
type Summary struct {
	Total               int `yaml:"total"`
	Failed              int `yaml:"failed"`
	AnalysisUnavailable int `yaml:"analysisunavailable"`
	LocalFallback       int `yaml:"localfallback"`
}

// ReportResult is one row's entry in the report
type ReportResult struct {
	ID         string               `yaml:"id"`
	ImagePath  string               `yaml:"imagepath"`
	Query      string               `yaml:"query,omitempty"`
	Error      string               `yaml:"error,omitempty"`
	DurationMS int64                `yaml:"durationms"`
	Analysis   *models.RoomAnalysis `yaml:"analysis,omitempty"`
	Keywords   []string             `yaml:"keywords,omitempty"`
	Furniture  []string             `yaml:"furniture,omitempty"`
	Fallback   bool                 `yaml:"fallback"`
	Reply      string               `yaml:"reply,omitempty"`
}

// Report is the complete YAML document for one batch
type Report struct {
	Config  ReportConfig   `yaml:"config"`
	Summary Summary        `yaml:"summary"`
	Results []ReportResult `yaml:"results"`
}

// NewReport builds a report from runner outcomes
func NewReport(config ReportConfig, outcomes []Outcome) Report {
	if config.Timestamp == "" {
		config.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	report := Report{
		Config:  config,
		Results: make([]ReportResult, 0, len(outcomes)),
	}
	unavailable := analysis.FailureAnalysis().Theme

	for _, o := range outcomes {
		// rows never started because the batch was interrupted
		if o.Row.ID == "" && o.Row.ImagePath == "" {
			continue
		}

		report.Summary.Total++
		result := ReportResult{
			ID:         o.Row.ID,
			ImagePath:  o.Row.ImagePath,
			Query:      o.Row.Query,
			DurationMS: o.Duration.Milliseconds(),
		}

		if o.Err != nil {
			report.Summary.Failed++
			result.Error = o.Err.Error()
			report.Results = append(report.Results, result)
			continue
		}

		a := o.Result.Analysis
		result.Analysis = &a
		result.Keywords = o.Result.Keywords
		result.Reply = o.Result.Reply
		for _, item := range o.Result.Furniture {
			result.Furniture = append(result.Furniture, item.ID)
		}
		result.Fallback = furniture.IsFallback(o.Result.Furniture)

		if a.Theme == unavailable {
			report.Summary.AnalysisUnavailable++
		}
		if result.Fallback {
			report.Summary.LocalFallback++
		}
		report.Results = append(report.Results, result)
	}

	return report
}

// Save writes the report as YAML, creating parent directories as needed
func (r Report) Save(path string) (string, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := yaml.Marshal(&r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}

// DefaultReportPath mirrors the reports/<model>-<timestamp>.yaml layout
func DefaultReportPath(model, timestamp string) string {
	return filepath.Join("reports", fmt.Sprintf("%s-%s.yaml", model, timestamp))
}
