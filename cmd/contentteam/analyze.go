package main

import (
	"contentteam/internal/brief"
	"contentteam/internal/crawler"
	"contentteam/internal/editor"
	"contentteam/internal/readability"
	"contentteam/internal/seo"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	regions     []string
	keywords    []string
	industry    string
	contentType string
	seoBrief    string

	auditWorkers   int
	auditThreshold float64
)

func init() {
	culturalCmd.Flags().StringSliceVarP(&regions, "region", "r", nil, "Cities to check for regional balance (defaults to the built-in list)")

	seoCmd.Flags().StringSliceVarP(&keywords, "keyword", "k", nil, "Target keyword (repeatable)")
	seoCmd.Flags().StringSliceVarP(&regions, "region", "r", nil, "Target region (repeatable)")
	seoCmd.Flags().StringVar(&industry, "industry", "general", "Industry used for secondary keywords")
	seoCmd.Flags().StringVar(&seoBrief, "brief", "", "Campaign brief whose business details fill the schema markup")

	editCmd.Flags().StringVarP(&contentType, "type", "t", "general", "Content type: blog, social_media, email, competitor_analysis or general")

	auditCmd.Flags().IntVarP(&auditWorkers, "workers", "w", 4, "Files scored in parallel")
	auditCmd.Flags().Float64Var(&auditThreshold, "threshold", 0, "Flag files below this overall score (defaults to agents.low_quality)")
}

var scoreCmd = &cobra.Command{
	Use:   "score <input-file>",
	Short: "Print the quality report for a piece of content as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		report := app.analyzers().quality.Assess(text)
		app.recorder.ObserveAnalysis("score")
		app.logger.Debug("scored content",
			zap.String("file", args[0]),
			zap.Float64("overall_quality", report.Scores.Overall),
		)
		return printJSON(cmd.OutOrStdout(), report)
	},
}

var briefCmd = &cobra.Command{
	Use:   "brief <brief-file>",
	Short: "Extract structured fields from a campaign brief",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		app.recorder.ObserveAnalysis("brief")
		return printJSON(cmd.OutOrStdout(), brief.New(app.cfg.Regional).Extract(text))
	},
}

var culturalCmd = &cobra.Command{
	Use:   "cultural <input-file>",
	Short: "Check content for cultural sensitivity and regional balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		checker := app.analyzers().cultural
		app.recorder.ObserveAnalysis("cultural")
		if len(regions) > 0 {
			return printJSON(cmd.OutOrStdout(), checker.AssessWithRegions(text, regions))
		}
		return printJSON(cmd.OutOrStdout(), checker.Assess(text))
	},
}

type optimizeOutput struct {
	Content       string              `json:"content"`
	Readability   readability.Metrics `json:"readability_metrics"`
	Optimizations []string            `json:"mobile_optimizations"`
	Suggestions   []string            `json:"suggestions"`
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize <input-file>",
	Short: "Shorten long sentences and repack paragraphs for mobile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		a := app.analyzers()
		r := a.readability.Optimize(text)
		m := a.mobile.Optimize(r.Content)
		app.recorder.ObserveAnalysis("optimize")
		return printJSON(cmd.OutOrStdout(), optimizeOutput{
			Content:       m.Content,
			Readability:   r.Metrics,
			Optimizations: m.Optimizations,
			Suggestions:   m.Suggestions,
		})
	},
}

var seoCmd = &cobra.Command{
	Use:   "seo <input-file>",
	Short: "Analyse keyword usage and generate meta tags",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		b := seo.Business{Industry: industry}
		if seoBrief != "" {
			raw, err := readInput(seoBrief)
			if err != nil {
				return err
			}
			b = businessFromBrief(brief.New(app.cfg.Regional).Extract(raw))
			if cmd.Flags().Changed("industry") {
				b.Industry = industry
			}
		}
		report := seo.New(app.cfg.Scoring.SEO).AnalyzeFor(text, b, keywords, regions)
		app.recorder.ObserveAnalysis("seo")
		return printJSON(cmd.OutOrStdout(), report)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <input-file>",
	Short: "Run the local editing pass and print the edited content with scores",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ct, err := editor.ParseContentType(contentType)
		if err != nil {
			return err
		}
		text, err := readInput(args[0])
		if err != nil {
			return err
		}
		a := app.analyzers()
		ed := editor.New(editor.Deps{
			Readability: a.readability,
			Cultural:    a.cultural,
			Mobile:      a.mobile,
			Quality:     a.quality,
		})
		app.recorder.ObserveAnalysis("edit")
		return printJSON(cmd.OutOrStdout(), ed.Edit(text, ct))
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit <dir>",
	Short: "Score every Markdown and text file under a directory, worst first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		threshold := auditThreshold
		if threshold <= 0 {
			threshold = app.cfg.Agents.LowQuality
		}
		summary, err := crawler.NewCrawler(appFs).Audit(cmd.Context(), args[0], app.analyzers().quality, auditWorkers, threshold)
		if err != nil {
			return err
		}
		app.recorder.ObserveAnalysis("audit")
		app.logger.Info("audit completed",
			zap.String("root", args[0]),
			zap.Int("files", summary.Files),
			zap.Int("below_threshold", len(summary.BelowThreshold)),
		)
		return printJSON(cmd.OutOrStdout(), summary)
	},
}

// businessFromBrief maps extracted brief fields onto schema details. The
// brief's fallback location is not a real address and is dropped.
func businessFromBrief(cb brief.ContentBrief) seo.Business {
	b := seo.Business{
		Name:       cb.BusinessName,
		City:       cb.Location,
		PriceRange: cb.PriceRange,
		Industry:   cb.Industry,
	}
	if b.City == "India" {
		b.City = ""
	}
	return b
}
