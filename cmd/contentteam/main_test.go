package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contentteam/internal/brief"
	"contentteam/internal/crawler"
	"contentteam/internal/editor"
	"contentteam/internal/llm"
	"contentteam/internal/quality"
	"contentteam/internal/seo"
	"contentteam/internal/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0644))
	}
	return fs
}

// execute runs the root command on fs with flag state reset between runs.
func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	prevFs := appFs
	appFs = fs
	t.Cleanup(func() { appFs = prevFs })

	regions, keywords = nil, nil
	industry, contentType, generateType = "general", "general", "general"
	seoBrief = ""
	competitorFocus = defaultCompetitorFocus
	historyLimit, historyJSON = 20, false
	auditWorkers, auditThreshold = 4, 0
	dbPath, metricsFile = "", ""
	logLevel = "error"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScoreCmd_PrintsQualityReport(t *testing.T) {
	out, err := execute(t, memFs(t, map[string]string{
		"post.txt": "Do you love chai? We serve the best chai in Mumbai!",
	}), "score", "post.txt")
	require.NoError(t, err)

	var report quality.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 79.5, report.Scores.Overall)
	assert.Equal(t, 85.0, report.Scores.Cultural)
	assert.Contains(t, out, `"overall_quality"`)
}

func TestScoreCmd_MissingFileFails(t *testing.T) {
	out, err := execute(t, memFs(t, nil), "score", "missing.txt")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to read missing.txt")
	assert.Empty(t, out)
}

func TestScoreCmd_RequiresOneArgument(t *testing.T) {
	_, err := execute(t, memFs(t, nil), "score")
	assert.Error(t, err)
}

func TestBriefCmd_ExtractsFields(t *testing.T) {
	out, err := execute(t, memFs(t, map[string]string{
		"brief.txt": "Restaurant Name: Spice Route, Location: Bandra West, Mumbai",
	}), "brief", "brief.txt")
	require.NoError(t, err)

	var b brief.ContentBrief
	require.NoError(t, json.Unmarshal([]byte(out), &b))
	assert.Equal(t, "Spice Route", b.BusinessName)
	assert.Contains(t, b.Location, "Bandra West, Mumbai")
}

func TestCulturalCmd_UsesRegionFlag(t *testing.T) {
	out, err := execute(t, memFs(t, map[string]string{
		"post.txt": "Fresh thali in Pune and Nagpur.",
	}), "cultural", "post.txt", "--region", "pune,nagpur")
	require.NoError(t, err)
	assert.Contains(t, out, `"regional_balance": true`)
}

func TestSeoCmd_AnalysesKeywords(t *testing.T) {
	out, err := execute(t, memFs(t, map[string]string{
		"post.md": "## Best Biryani\n\nOur biryani in Mumbai is famous.",
	}), "seo", "post.md", "-k", "biryani", "-r", "mumbai", "--industry", "food")
	require.NoError(t, err)

	var report seo.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.PrimaryKeywords)
	assert.Contains(t, report.LocalKeywords, "biryani in mumbai")
}

func TestSeoCmd_SchemaFromBrief(t *testing.T) {
	out, err := execute(t, memFs(t, map[string]string{
		"post.md":   "## Best Biryani\n\nOur biryani in Mumbai is famous. Call us to order!",
		"brief.txt": "Restaurant Name: Spice Route, Location: Bandra West, Mumbai, price ₹300-800 for families",
	}), "seo", "post.md", "-k", "biryani", "--brief", "brief.txt")
	require.NoError(t, err)

	var report seo.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	lb := report.Schema.LocalBusiness
	assert.Equal(t, "Spice Route", lb.Name)
	assert.Equal(t, "Bandra West, Mumbai", lb.Address.Locality)
	assert.Equal(t, "₹300-800", lb.PriceRange)
	require.NotNil(t, report.Schema.FAQPage)
	assert.Len(t, report.Schema.FAQPage.MainEntity, 3)
	assert.Len(t, report.FAQ, 3)
	assert.Contains(t, report.SuggestedHeaders, "H1: Complete Guide to Biryani in India")
}

func TestEditCmd(t *testing.T) {
	fs := memFs(t, map[string]string{"post.txt": "we offer the best biryani for ₹1234567 per plate. call us now!"})

	_, err := execute(t, fs, "edit", "post.txt", "--type", "newsletter")
	assert.ErrorContains(t, err, "unsupported content type")

	out, err := execute(t, fs, "edit", "post.txt", "--type", "blog")
	require.NoError(t, err)
	var res editor.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, editor.Blog, res.ContentType)
	assert.Contains(t, res.Edited, "₹12,34,567")
}

func TestOptimizeCmd(t *testing.T) {
	out, err := execute(t, memFs(t, map[string]string{"post.txt": "Short and sweet."}), "optimize", "post.txt")
	require.NoError(t, err)
	assert.Contains(t, out, `"content": "Short and sweet."`)
}

func TestAuditCmd(t *testing.T) {
	fs := memFs(t, map[string]string{
		"site/good.md":    "Do you love chai? We serve the best chai in Mumbai!",
		"site/blog/a.txt": "Hello",
		"site/logo.png":   "png",
	})

	out, err := execute(t, fs, "audit", "site", "--threshold", "100")
	require.NoError(t, err)

	var summary crawler.AuditSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 2, summary.Files)
	assert.Len(t, summary.BelowThreshold, 2)
	assert.LessOrEqual(t, summary.Results[0].Report.Scores.Overall, summary.Results[1].Report.Scores.Overall)

	_, err = execute(t, fs, "audit", "missing")
	assert.ErrorContains(t, err, "failed to scan missing")
}

func fakeTeam(ctx context.Context, opts llm.Options) (llm.Completer, error) {
	return llm.CompleterFunc(func(ctx context.Context, req llm.Request) (string, error) {
		switch {
		case strings.Contains(req.System, "Project Manager"):
			return "FINAL CONTENT APPROVED", nil
		case strings.Contains(req.System, "Brand Strategist"):
			return "Add a family angle.", nil
		default:
			return "Celebrate Diwali with our family thali in Mumbai. Call us to book!", nil
		}
	}), nil
}

func TestGenerateHistoryShow(t *testing.T) {
	prev := newCompleter
	newCompleter = fakeTeam
	t.Cleanup(func() { newCompleter = prev })

	db := filepath.Join(t.TempDir(), "runs.db")
	fs := memFs(t, map[string]string{"brief.txt": "Restaurant Name: Spice Route, Location: Bandra West, Mumbai. Diwali blog post."})

	out, err := execute(t, fs, "generate", "brief.txt", "--type", "blog", "--db", db)
	require.NoError(t, err)

	var gen generateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &gen))
	assert.True(t, gen.Approved)
	assert.Equal(t, 5, gen.Turns)
	assert.Equal(t, "blog", gen.ContentType)
	assert.NotEmpty(t, gen.FinalContent)
	assert.Equal(t, filepath.Join("output", "run_"+gen.RunID+".json"), gen.ReportPath)
	exists, err := afero.Exists(fs, gen.ReportPath)
	require.NoError(t, err)
	assert.True(t, exists)

	out, err = execute(t, memFs(t, nil), "history", "--db", db)
	require.NoError(t, err)
	var runs []storage.RunSummary
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, gen.RunID, runs[0].ID)

	out, err = execute(t, memFs(t, nil), "show", gen.RunID, "--db", db)
	require.NoError(t, err)
	var run storage.Run
	require.NoError(t, json.Unmarshal([]byte(out), &run))
	assert.Len(t, run.Turns, 5)
	assert.NotEmpty(t, run.Report)
}

func TestCompetitorCmd_RunsAnalysis(t *testing.T) {
	prev := newCompleter
	var prompts []string
	newCompleter = func(ctx context.Context, opts llm.Options) (llm.Completer, error) {
		inner, _ := fakeTeam(ctx, opts)
		return llm.CompleterFunc(func(ctx context.Context, req llm.Request) (string, error) {
			prompts = append(prompts, req.Prompt)
			return inner.Complete(ctx, req)
		}), nil
	}
	t.Cleanup(func() { newCompleter = prev })

	db := filepath.Join(t.TempDir(), "runs.db")
	fs := memFs(t, map[string]string{"rival.txt": "Curry House, Andheri, Mumbai posts festival reels weekly."})

	out, err := execute(t, fs, "competitor", "rival.txt", "--focus", "festival campaigns", "--db", db)
	require.NoError(t, err)

	var gen generateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &gen))
	assert.Equal(t, "competitor_analysis", gen.ContentType)
	assert.True(t, gen.Approved)
	assert.True(t, gen.StandardsPassed)
	require.NotEmpty(t, prompts)
	assert.Contains(t, prompts[0], "COMPETITOR CONTENT ANALYSIS - INDIAN MARKET")
	assert.Contains(t, prompts[0], "Competitor Information: Curry House, Andheri, Mumbai posts festival reels weekly.")
	assert.Contains(t, prompts[0], "Analysis Focus: festival campaigns")
}

func TestShowCmd_UnknownRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	_, err := execute(t, memFs(t, nil), "show", "nope", "--db", db)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestMetricsFileWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contentteam.prom")
	_, err := execute(t, memFs(t, map[string]string{"post.txt": "Hello"}), "score", "post.txt", "--metrics-file", path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `contentteam_analyses_total{command="score"} 1`)
}
