package team

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
)

const reportSchemaURL = "mem://contentteam/run_report.schema.json"

//go:embed run_report.schema.json
var reportSchemaJSON []byte

var loadReportSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(reportSchemaURL, bytes.NewReader(reportSchemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(reportSchemaURL)
})

type ReportSignal struct {
	Code     string  `json:"code"`
	Stage    string  `json:"stage"`
	Severity string  `json:"severity"`
	Message  string  `json:"message"`
	Value    float64 `json:"value,omitempty"`
}

type StageMetric struct {
	Name       string             `json:"name"`
	Status     string             `json:"status"`
	StartedAt  string             `json:"started_at"`
	FinishedAt string             `json:"finished_at"`
	DurationMS int64              `json:"duration_ms"`
	Counters   map[string]float64 `json:"counters,omitempty"`
	Notes      []string           `json:"notes,omitempty"`
	Error      string             `json:"error,omitempty"`
}

type TurnMetric struct {
	Seq        int     `json:"seq"`
	Round      int     `json:"round"`
	Role       string  `json:"role"`
	Words      int     `json:"words"`
	Score      float64 `json:"score,omitempty"`
	DurationMS int64   `json:"duration_ms"`
	Draft      bool    `json:"draft"`
}

type ReportSummary struct {
	StageCount        int            `json:"stage_count"`
	TurnCount         int            `json:"turn_count"`
	FailedStages      int            `json:"failed_stages"`
	AvgDraftScore     float64        `json:"avg_draft_score"`
	FinalQuality      float64        `json:"final_quality"`
	Terminated        bool           `json:"terminated"`
	TurnsByRole       map[string]int `json:"turns_by_role"`
	SignalsBySeverity map[string]int `json:"signals_by_severity"`
}

// RunReport records stage timings, per-turn metrics and quality signals for
// one team run.
type RunReport struct {
	Version     string         `json:"version"`
	ContentType string         `json:"content_type"`
	GeneratedAt string         `json:"generated_at"`
	Stages      []StageMetric  `json:"stages"`
	Turns       []TurnMetric   `json:"turns,omitempty"`
	Signals     []ReportSignal `json:"signals,omitempty"`
	Summary     ReportSummary  `json:"summary"`
}

type StageHandle struct {
	name    string
	started time.Time
}

func NewRunReport(contentType string) *RunReport {
	return &RunReport{
		Version:     "v1",
		ContentType: contentType,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Stages:      []StageMetric{},
		Turns:       []TurnMetric{},
		Signals:     []ReportSignal{},
	}
}

func (r *RunReport) BeginStage(name string) StageHandle {
	return StageHandle{name: strings.TrimSpace(name), started: time.Now().UTC()}
}

func (r *RunReport) EndStage(h StageHandle, status string, counters map[string]float64, notes []string, err error) {
	if r == nil || h.name == "" {
		return
	}
	if strings.TrimSpace(status) == "" {
		status = "ok"
	}
	finished := time.Now().UTC()
	m := StageMetric{
		Name:       h.name,
		Status:     status,
		StartedAt:  h.started.Format(time.RFC3339Nano),
		FinishedAt: finished.Format(time.RFC3339Nano),
		DurationMS: finished.Sub(h.started).Milliseconds(),
		Counters:   cleanCounters(counters),
		Notes:      cleanNotes(notes),
	}
	if err != nil {
		m.Error = err.Error()
		if status == "ok" {
			m.Status = "error"
		}
	}
	r.Stages = append(r.Stages, m)
}

func (r *RunReport) AddSignal(code, stage, severity, message string, value float64) {
	if r == nil {
		return
	}
	s := ReportSignal{
		Code:     strings.TrimSpace(code),
		Stage:    strings.TrimSpace(stage),
		Severity: strings.ToLower(strings.TrimSpace(severity)),
		Message:  strings.TrimSpace(message),
		Value:    value,
	}
	if s.Code == "" || s.Stage == "" || s.Severity == "" || s.Message == "" {
		return
	}
	r.Signals = append(r.Signals, s)
}

func (r *RunReport) AddTurn(m TurnMetric) {
	if r == nil || m.Role == "" {
		return
	}
	r.Turns = append(r.Turns, m)
}

// Finalize sorts signals by severity and fills the summary. finalQuality is
// the overall score of the delivered content.
func (r *RunReport) Finalize(finalQuality float64, terminated bool) {
	if r == nil {
		return
	}
	r.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	sort.SliceStable(r.Signals, func(i, j int) bool {
		pi := signalPriority(r.Signals[i].Severity)
		pj := signalPriority(r.Signals[j].Severity)
		if pi == pj {
			if r.Signals[i].Stage == r.Signals[j].Stage {
				return r.Signals[i].Code < r.Signals[j].Code
			}
			return r.Signals[i].Stage < r.Signals[j].Stage
		}
		return pi > pj
	})

	severityCount := map[string]int{"critical": 0, "warning": 0, "info": 0}
	for _, s := range r.Signals {
		severityCount[s.Severity]++
	}

	failed := 0
	for _, st := range r.Stages {
		if st.Status != "ok" {
			failed++
		}
	}

	byRole := map[string]int{}
	drafts, total := 0, 0.0
	for _, t := range r.Turns {
		byRole[t.Role]++
		if t.Draft {
			drafts++
			total += t.Score
		}
	}
	avg := 0.0
	if drafts > 0 {
		avg = total / float64(drafts)
	}

	r.Summary = ReportSummary{
		StageCount:        len(r.Stages),
		TurnCount:         len(r.Turns),
		FailedStages:      failed,
		AvgDraftScore:     avg,
		FinalQuality:      finalQuality,
		Terminated:        terminated,
		TurnsByRole:       byRole,
		SignalsBySeverity: severityCount,
	}
}

// Validate checks the report against the embedded JSON schema.
func (r *RunReport) Validate() error {
	if r == nil {
		return fmt.Errorf("run report is nil")
	}
	schema, err := loadReportSchema()
	if err != nil {
		return fmt.Errorf("failed to compile run report schema: %w", err)
	}

	var v any
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal run report for schema validation: %w", err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("failed to normalize run report for schema validation: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("run report schema validation failed: %w", err)
	}
	return nil
}

// Save validates the report and writes it as indented JSON.
func (r *RunReport) Save(fs afero.Fs, path string) error {
	if r == nil {
		return nil
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return afero.WriteFile(fs, path, data, 0644)
}

func cleanCounters(raw map[string]float64) map[string]float64 {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for k, v := range raw {
		if key := strings.TrimSpace(k); key != "" {
			out[key] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cleanNotes(raw []string) []string {
	var out []string
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func signalPriority(severity string) int {
	switch severity {
	case "critical":
		return 3
	case "warning":
		return 2
	default:
		return 1
	}
}
