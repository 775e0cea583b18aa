package batch

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/vibear-app/vibear/internal/pipeline"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs one photo through analysis and matching
type Pipeline interface {
	Run(ctx context.Context, in pipeline.Input) pipeline.Result
}

// Outcome is the result for one manifest row
type Outcome struct {
	Row      Row
	Result   pipeline.Result
	Duration time.Duration
	Err      error
}

// Runner processes manifest rows with bounded concurrency
type Runner struct {
	pipeline    Pipeline
	concurrency int
	baseDir     string
}

// NewRunner creates a runner; relative image paths resolve against baseDir
func NewRunner(p Pipeline, concurrency int, baseDir string) *Runner {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Runner{
		pipeline:    p,
		concurrency: concurrency,
		baseDir:     baseDir,
	}
}

// Run processes every row and returns outcomes in manifest order. A row whose photo cannot be
// read records the error and does not stop the batch; only context cancellation does.
func (r *Runner) Run(ctx context.Context, rows []Row) ([]Outcome, error) {
	outcomes := make([]Outcome, len(rows))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcomes[i] = r.process(ctx, row)
			n := done.Add(1)
			slog.Info("Processed room", "id", row.ID, "progress", fmt.Sprintf("%d/%d", n, len(rows)), "error", outcomes[i].Err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, fmt.Errorf("batch interrupted: %w", err)
	}
	return outcomes, nil
}

func (r *Runner) process(ctx context.Context, row Row) Outcome {
	start := time.Now()
	outcome := Outcome{Row: row}

	image, err := r.readImage(row.ImagePath)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	outcome.Result = r.pipeline.Run(ctx, pipeline.Input{
		Image:   image,
		Context: row.Context,
		Query:   row.Query,
	})
	outcome.Duration = time.Since(start)
	return outcome
}

// readImage returns the photo as a data URL
func (r *Runner) readImage(path string) (string, error) {
	if !filepath.IsAbs(path) && r.baseDir != "" {
		path = filepath.Join(r.baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	return "data:" + http.DetectContentType(data) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
