package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/infocode/internal/app"
	"github.com/katalvlaran/infocode/report"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Analyse every configured text and write its CSV and the shared workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Inputs) == 0 {
				return errors.New("no inputs configured (--config)")
			}
			an, err := app.NewAnalyzer(logger, cfg.Normalize)
			if err != nil {
				return err
			}
			results, err := an.AnalyzeAll(cmd.Context(), cfg.Inputs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			sums := make([]report.Summary, len(results))
			for i, res := range results {
				sums[i] = res.Summary
				path, err := app.WriteCodes(cfg.OutputDir, res)
				if err != nil {
					return err
				}
				logger.Info("code table written", zap.String("input", res.Name), zap.String("path", path))
				if cfg.Histogram.Enabled {
					fmt.Fprintf(out, "%s\n%s\n", res.Name, report.Histogram(res.Ranked, cfg.Histogram.Width, cfg.Histogram.Limit))
				}
			}
			if cfg.Workbook != "" {
				path, err := app.WriteWorkbook(cfg.OutputDir, cfg.Workbook, results)
				if err != nil {
					return err
				}
				logger.Info("workbook written", zap.String("path", path), zap.Int("sheets", len(results)))
			}
			fmt.Fprintln(out, report.RenderSummaries(sums))
			return nil
		},
	}
}
