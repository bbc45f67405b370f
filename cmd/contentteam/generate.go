package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"contentteam/internal/brief"
	"contentteam/internal/editor"
	"contentteam/internal/llm"
	"contentteam/internal/storage"
	"contentteam/internal/team"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	generateType    string
	competitorFocus string
	historyLimit    int
	historyJSON     bool

	// newCompleter is swapped in tests to avoid network calls.
	newCompleter = llm.New
)

var (
	styleHeader  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	styleSubtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func init() {
	generateCmd.Flags().StringVarP(&generateType, "type", "t", "general", "Content type: blog, social_media, email, competitor_analysis or general")
	competitorCmd.Flags().StringVarP(&competitorFocus, "focus", "f", defaultCompetitorFocus, "What the analysis should concentrate on")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to list")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Print JSON even on a terminal")
}

const defaultCompetitorFocus = "content strategy and cultural positioning"

type generateOutput struct {
	RunID          string  `json:"run_id"`
	ContentType    string  `json:"content_type"`
	Approved       bool    `json:"approved"`
	Turns          int     `json:"turns"`
	OverallQuality float64 `json:"overall_quality"`
	// StandardsPassed is the quality gate's verdict on the final draft.
	StandardsPassed bool   `json:"standards_passed"`
	ReportPath      string `json:"report_path,omitempty"`
	FinalContent    string `json:"final_content"`
}

var generateCmd = &cobra.Command{
	Use:   "generate <brief-file>",
	Short: "Run the content team on a brief and archive the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ct, err := editor.ParseContentType(generateType)
		if err != nil {
			return err
		}
		rawBrief, err := readInput(args[0])
		if err != nil {
			return err
		}
		return runTeam(cmd, rawBrief, ct)
	},
}

var competitorCmd = &cobra.Command{
	Use:   "competitor <competitor-info-file>",
	Short: "Have the content team analyse a competitor's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := readInput(args[0])
		if err != nil {
			return err
		}
		return runTeam(cmd, competitorBrief(info, competitorFocus), editor.CompetitorAnalysis)
	},
}

func competitorBrief(info, focus string) string {
	if strings.TrimSpace(focus) == "" {
		focus = defaultCompetitorFocus
	}
	return fmt.Sprintf("Competitor Information: %s\nAnalysis Focus: %s", strings.TrimSpace(info), strings.TrimSpace(focus))
}

// runTeam runs the content team on rawBrief, archives the run and prints
// the outcome.
func runTeam(cmd *cobra.Command, rawBrief string, ct editor.ContentType) error {
	ctx := cmd.Context()
	completer, err := newCompleter(ctx, app.cfg.AI.Options())
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}

	a := app.analyzers()
	tm, err := team.New(app.cfg.Agents, team.Deps{
		Completer: completer,
		Editor: editor.New(editor.Deps{
			Readability: a.readability,
			Cultural:    a.cultural,
			Mobile:      a.mobile,
			Quality:     a.quality,
		}),
		Quality:   a.quality,
		Extractor: brief.New(app.cfg.Regional),
		Regional:  app.cfg.Regional,
		Logger:    app.logger,
		Recorder:  app.recorder,
	})
	if err != nil {
		return err
	}

	store, err := app.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := tm.Run(ctx, rawBrief, ct)
	if err != nil {
		return fmt.Errorf("team run failed: %w", err)
	}

	run, err := res.Archive(rawBrief)
	if err != nil {
		return err
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("failed to archive run: %w", err)
	}

	out := generateOutput{
		RunID:          run.ID,
		ContentType:    run.ContentType,
		Approved:       run.Terminated,
		Turns:          len(run.Turns),
		OverallQuality: run.OverallQuality,
		FinalContent:   run.FinalContent,
	}
	if res.Validation != nil {
		out.StandardsPassed = res.Validation.Passed
	}
	if dir := app.cfg.Storage.ReportDir; dir != "" {
		out.ReportPath = filepath.Join(dir, "run_"+run.ID+".json")
		if err := res.Report.Save(appFs, out.ReportPath); err != nil {
			return fmt.Errorf("failed to save run report: %w", err)
		}
	}
	app.logger.Info("run archived", zap.String("run_id", run.ID), zap.String("db", app.cfg.Storage.Path))
	return printJSON(cmd.OutOrStdout(), out)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived team runs, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := app.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if historyJSON || !isTerminal(w) {
			if runs == nil {
				runs = []storage.RunSummary{}
			}
			return printJSON(w, runs)
		}
		renderHistory(w, runs)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print an archived run with its turns",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := app.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.GetRun(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), run)
	},
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func renderHistory(w io.Writer, runs []storage.RunSummary) {
	if len(runs) == 0 {
		fmt.Fprintln(w, styleSubtle.Render("No archived runs."))
		return
	}
	fmt.Fprintln(w, styleHeader.Render(fmt.Sprintf("%-36s  %-16s  %-12s  %7s  %5s  %s",
		"RUN", "CREATED", "TYPE", "QUALITY", "TURNS", "STATUS")))
	for _, r := range runs {
		status := styleSuccess.Render("approved")
		if !r.Terminated {
			status = styleWarning.Render("exhausted")
		}
		fmt.Fprintf(w, "%-36s  %s  %-12s  %7.1f  %5d  %s\n",
			r.ID,
			styleSubtle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			strings.TrimSpace(r.ContentType),
			r.OverallQuality,
			r.Turns,
			status,
		)
	}
}
