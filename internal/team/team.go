// Package team runs the content team: an enriched brief is passed through
// writer, editor, SEO, brand and project manager turns over an LLM until the
// project manager approves or the round limit is reached. Drafts are scored
// locally after every content turn and the final draft gets a full editor pass.
package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"contentteam/internal/brief"
	"contentteam/internal/editor"
	"contentteam/internal/lexicon"
	"contentteam/internal/llm"
	"contentteam/internal/quality"
	"contentteam/internal/storage"
	"contentteam/internal/textmetrics"

	"go.uber.org/zap"
)

var ErrNoDraft = errors.New("team produced no draft")

type Config struct {
	Roles              map[Role]RoleSettings `yaml:"roles" validate:"dive"`
	MaxRounds          int                   `yaml:"max_rounds" validate:"gte=0,lte=20"`
	TerminationPhrases []string              `yaml:"termination_phrases"`
	// LowQuality flags delivered content scoring below it.
	LowQuality float64 `yaml:"low_quality" validate:"gte=0,lte=100"`
	// Standards are the per-standard minimums every draft is validated
	// against. With EnforceStandards an approval is ignored while the
	// latest draft fails them.
	Standards        []Standard `yaml:"standards" validate:"dive"`
	EnforceStandards bool       `yaml:"enforce_standards"`
}

func DefaultConfig() Config {
	return Config{
		Roles:     DefaultRoleSettings(),
		MaxRounds: 3,
		TerminationPhrases: []string{
			"final content approved",
			"terminate",
			"task completed",
			"content ready for publication",
			"all requirements met",
		},
		LowQuality: 70,
		Standards:  DefaultStandards(),
	}
}

// Recorder receives turn and run observations.
type Recorder interface {
	ObserveTurn(role string, d time.Duration, err error)
	ObserveRun(contentType string, quality float64, terminated bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveTurn(string, time.Duration, error) {}
func (nopRecorder) ObserveRun(string, float64, bool)         {}

// Deps are the collaborators of a Team. Only Completer is required.
type Deps struct {
	Completer llm.Completer
	Editor    *editor.Editor
	Quality   *quality.Assessor
	Extractor *brief.Extractor
	Regional  lexicon.Regional
	Logger    *zap.Logger
	Recorder  Recorder
}

type Team struct {
	cfg       Config
	completer llm.Completer
	editor    *editor.Editor
	quality   *quality.Assessor
	gate      *Gate
	extractor *brief.Extractor
	prompts   *PromptBuilder
	logger    *zap.Logger
	recorder  Recorder
}

func New(cfg Config, d Deps) (*Team, error) {
	if d.Completer == nil {
		return nil, errors.New("team requires a completer")
	}
	def := DefaultConfig()
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = def.MaxRounds
	}
	if len(cfg.TerminationPhrases) == 0 {
		cfg.TerminationPhrases = def.TerminationPhrases
	}
	if cfg.LowQuality <= 0 {
		cfg.LowQuality = def.LowQuality
	}

	regional := d.Regional.Merge(lexicon.DefaultRegional())
	if d.Quality == nil {
		d.Quality = quality.New(quality.DefaultConfig(), nil, nil, nil)
	}
	if d.Editor == nil {
		d.Editor = editor.New(editor.Deps{Quality: d.Quality})
	}
	if d.Extractor == nil {
		d.Extractor = brief.New(regional)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Recorder == nil {
		d.Recorder = nopRecorder{}
	}

	return &Team{
		cfg:       cfg,
		completer: d.Completer,
		editor:    d.Editor,
		quality:   d.Quality,
		gate:      NewGate(cfg.Standards, d.Quality, d.Editor),
		extractor: d.Extractor,
		prompts:   &PromptBuilder{Regional: regional},
		logger:    d.Logger.With(zap.String("component", "team")),
		recorder:  d.Recorder,
	}, nil
}

type Turn struct {
	Seq      int           `json:"seq"`
	Round    int           `json:"round"`
	Role     Role          `json:"role"`
	Content  string        `json:"content"`
	Score    float64       `json:"score,omitempty"`
	Duration time.Duration `json:"duration"`
}

type Result struct {
	ContentType editor.ContentType `json:"content_type"`
	Brief       brief.ContentBrief `json:"brief"`
	Brand       BrandAnalysis      `json:"brand"`
	Kickoff     string             `json:"kickoff"`
	Turns       []Turn             `json:"turns"`
	Draft       string             `json:"draft"`
	Edit        editor.Result      `json:"edit"`
	Terminated  bool               `json:"terminated"`
	// Validations holds the latest gate verdict per content role and
	// Validation the verdict on the final draft.
	Validations map[Role]Validation `json:"validations"`
	Validation  *Validation         `json:"validation,omitempty"`
	Report      *RunReport          `json:"report"`
}

// FinalContent is the edited version of the last draft.
func (r *Result) FinalContent() string {
	return r.Edit.Edited
}

// Run executes one team conversation for rawBrief.
func (t *Team) Run(ctx context.Context, rawBrief string, ct editor.ContentType) (*Result, error) {
	report := NewRunReport(string(ct))
	res := &Result{ContentType: ct, Report: report, Turns: []Turn{}, Validations: map[Role]Validation{}}

	stage := report.BeginStage("brief")
	res.Brief = t.extractor.Extract(rawBrief)
	res.Brand = AnalyzeBrand(res.Brief)
	res.Kickoff = t.prompts.Kickoff(rawBrief, ct, res.Brand)
	report.EndStage(stage, "ok", map[string]float64{
		"regions":      float64(len(res.Brief.RegionalFocus)),
		"requirements": float64(len(res.Brief.KeyRequirements)),
	}, []string{"archetype: " + res.Brand.Archetype.Name, "positioning: " + res.Brand.Positioning.Name}, nil)

	t.logger.Info("brief prepared",
		zap.String("business", res.Brief.BusinessName),
		zap.String("industry", res.Brief.Industry),
		zap.String("archetype", res.Brand.Archetype.Name),
	)

	stage = report.BeginStage("conversation")
	if err := t.converse(ctx, res); err != nil {
		report.EndStage(stage, "error", nil, nil, err)
		return nil, err
	}
	report.EndStage(stage, "ok", map[string]float64{"turns": float64(len(res.Turns))}, nil, nil)
	if !res.Terminated {
		report.AddSignal("max_rounds", "conversation", "warning",
			fmt.Sprintf("no approval after %d rounds", t.cfg.MaxRounds), float64(t.cfg.MaxRounds))
	}
	if v := res.Validation; v != nil && !v.Passed {
		report.AddSignal("standards_failed", "conversation", "warning", v.Summary(), v.Score)
	}

	stage = report.BeginStage("local_edit")
	res.Edit = t.editor.Edit(res.Draft, ct)
	report.EndStage(stage, "ok", res.Edit.Scores.ToMap(), res.Edit.ImprovementsMade, nil)
	t.addQualitySignals(res)

	report.Finalize(res.Edit.Scores.Overall, res.Terminated)
	t.recorder.ObserveRun(string(ct), res.Edit.Scores.Overall, res.Terminated)
	t.logger.Info("run finished",
		zap.Int("turns", len(res.Turns)),
		zap.Bool("approved", res.Terminated),
		zap.Float64("overall_quality", res.Edit.Scores.Overall),
	)
	return res, nil
}

func (t *Team) converse(ctx context.Context, res *Result) error {
	var feedback []string
	seq := 0
	for round := 1; round <= t.cfg.MaxRounds; round++ {
		for _, role := range Sequence {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("run cancelled: %w", err)
			}
			seq++

			notes := feedback
			if role == RoleProjectManager && res.Validation != nil {
				notes = append(slices.Clone(feedback), res.Validation.Summary())
			}
			out, elapsed, err := t.turn(ctx, role, res.Kickoff, res.Draft, notes)
			t.recorder.ObserveTurn(string(role), elapsed, err)
			if err != nil {
				return fmt.Errorf("failed to run %s turn: %w", role, err)
			}

			turn := Turn{Seq: seq, Round: round, Role: role, Content: out, Duration: elapsed}
			if role.ProducesContent() {
				if draft := StripTermination(out, t.cfg.TerminationPhrases); draft != "" {
					res.Draft = draft
				}
				if res.Draft != "" {
					turn.Score = t.quality.Score(res.Draft).Overall
					v := t.gate.Validate(role, res.Draft)
					res.Validations[role] = v
					res.Validation = &v
				}
				if role == RoleWriter {
					feedback = nil
				}
			} else if strings.TrimSpace(out) != "" {
				feedback = append(feedback, role.Title()+": "+strings.TrimSpace(out))
			}
			res.Turns = append(res.Turns, turn)
			res.Report.AddTurn(TurnMetric{
				Seq:        seq,
				Round:      round,
				Role:       string(role),
				Words:      textmetrics.WordCount(out),
				Score:      turn.Score,
				DurationMS: elapsed.Milliseconds(),
				Draft:      role.ProducesContent(),
			})

			t.logger.Debug("turn completed",
				zap.Int("round", round),
				zap.String("role", string(role)),
				zap.Duration("elapsed", elapsed),
				zap.Float64("score", turn.Score),
			)

			failing := res.Validation != nil && !res.Validation.Passed
			if Terminated(out, t.cfg.TerminationPhrases) {
				if !t.cfg.EnforceStandards || !failing {
					res.Terminated = true
					break
				}
				t.logger.Info("approval withheld by quality gate",
					zap.Int("round", round),
					zap.Strings("issues", res.Validation.Issues),
				)
			}
			if role == RoleProjectManager && failing {
				feedback = append(feedback, FeedbackMessage(RoleWriter, *res.Validation))
			}
		}
		if res.Terminated {
			break
		}
	}
	if res.Draft == "" {
		return ErrNoDraft
	}
	return nil
}

func (t *Team) turn(ctx context.Context, role Role, kickoff, draft string, feedback []string) (string, time.Duration, error) {
	settings := settingsFor(t.cfg.Roles, role)
	ctx, cancel := context.WithTimeout(ctx, settings.Timeout())
	defer cancel()

	start := time.Now()
	out, err := t.completer.Complete(ctx, llm.Request{
		System:      SystemPrompt(role),
		Prompt:      t.prompts.Turn(role, kickoff, draft, feedback),
		Temperature: settings.Temp(),
		MaxTokens:   settings.MaxTokens,
	})
	return out, time.Since(start), err
}

func (t *Team) addQualitySignals(res *Result) {
	r := res.Report
	if overall := res.Edit.Scores.Overall; overall < t.cfg.LowQuality {
		r.AddSignal("low_quality", "local_edit", "warning",
			fmt.Sprintf("overall quality %.1f is below %.0f", overall, t.cfg.LowQuality), overall)
	}
	for _, issue := range res.Edit.Cultural.IssuesFound {
		r.AddSignal("cultural_issue", "local_edit", "info", issue, 0)
	}
	if !res.Edit.FinalChecks.IncludesCallToAction {
		r.AddSignal("missing_cta", "local_edit", "info", "content has no call to action", 0)
	}
}

// Terminated reports whether a message carries one of the phrases as whole words.
func Terminated(message string, phrases []string) bool {
	return lexicon.ContainsAny(strings.ToLower(message), phrases)
}

// StripTermination drops lines that consist only of a termination phrase so
// approval markers do not leak into the draft.
func StripTermination(text string, phrases []string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		bare := strings.ToLower(strings.Trim(strings.TrimSpace(line), ".!*_#:- "))
		isMarker := false
		for _, p := range phrases {
			if bare == p {
				isMarker = true
				break
			}
		}
		if !isMarker {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Archive converts the result into a storable run.
func (r *Result) Archive(rawBrief string) (*storage.Run, error) {
	report, err := json.Marshal(r.Report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal run report: %w", err)
	}
	run := &storage.Run{
		ContentType:    string(r.ContentType),
		Brief:          rawBrief,
		FinalContent:   r.FinalContent(),
		OverallQuality: r.Edit.Scores.Overall,
		Terminated:     r.Terminated,
		Report:         report,
		Turns:          make([]storage.Turn, 0, len(r.Turns)),
	}
	for _, t := range r.Turns {
		run.Turns = append(run.Turns, storage.Turn{
			Seq:        t.Seq,
			Role:       string(t.Role),
			Content:    t.Content,
			Score:      t.Score,
			DurationMS: t.Duration.Milliseconds(),
		})
	}
	return run, nil
}
