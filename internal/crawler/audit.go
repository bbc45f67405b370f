package crawler

import (
	"context"
	"fmt"
	"sort"

	"contentteam/internal/quality"
	"contentteam/internal/textmetrics"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Assessor scores one piece of content.
type Assessor interface {
	Assess(text string) quality.Report
}

type FileReport struct {
	Path   string         `json:"path"`
	Words  int            `json:"words"`
	Report quality.Report `json:"report"`
}

type AuditSummary struct {
	Files          int          `json:"files"`
	AverageOverall float64      `json:"average_overall"`
	BelowThreshold []string     `json:"below_threshold"`
	Results        []FileReport `json:"results"`
}

// Audit scores every content file under root with up to workers goroutines.
// Results are ordered worst first; files scoring under threshold are listed
// in BelowThreshold.
func (c *Crawler) Audit(ctx context.Context, root string, a Assessor, workers int, threshold float64) (*AuditSummary, error) {
	paths, err := c.Files(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if workers <= 0 {
		workers = 1
	}

	results := make([]FileReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := afero.ReadFile(c.fs, path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			text := string(data)
			results[i] = FileReport{
				Path:   path,
				Words:  textmetrics.WordCount(text),
				Report: a.Assess(text),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Report.Scores.Overall < results[j].Report.Scores.Overall
	})

	summary := &AuditSummary{
		Files:          len(results),
		BelowThreshold: []string{},
		Results:        results,
	}
	total := 0.0
	for _, r := range results {
		total += r.Report.Scores.Overall
		if r.Report.Scores.Overall < threshold {
			summary.BelowThreshold = append(summary.BelowThreshold, r.Path)
		}
	}
	if len(results) > 0 {
		summary.AverageOverall = total / float64(len(results))
	}
	return summary, nil
}
