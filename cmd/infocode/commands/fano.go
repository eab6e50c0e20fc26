package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/infocode/internal/app"
	"github.com/katalvlaran/infocode/internal/source"
	"github.com/katalvlaran/infocode/report"
)

func fanoCmd() *cobra.Command {
	var (
		text     string
		file     string
		encoding string
		name     string
		csv      bool
		hist     bool
	)
	cmd := &cobra.Command{
		Use:   "fano",
		Short: "Build Shannon-Fano and Huffman codes for one text",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (text == "") == (file == "") {
				return errors.New("exactly one of --text or --file is required")
			}
			if file != "" {
				var err error
				if text, err = source.Read(file, encoding); err != nil {
					return err
				}
			}

			an, err := app.NewAnalyzer(logger, cfg.Normalize)
			if err != nil {
				return err
			}
			res, err := an.Analyze(name, text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.RenderCodes(report.CodeRows(res.Ranked, res.ShannonFano, res.Huffman)))
			fmt.Fprintln(out, report.RenderSummaries([]report.Summary{res.Summary}))
			fmt.Fprintf(out, "Kraft inequality: %s\n", res.Summary.ShannonFanoKraft)
			if hist || cfg.Histogram.Enabled {
				fmt.Fprint(out, report.Histogram(res.Ranked, cfg.Histogram.Width, cfg.Histogram.Limit))
			}

			if csv {
				path, err := app.WriteCodes(cfg.OutputDir, res)
				if err != nil {
					return err
				}
				logger.Info("code table written", zap.String("path", path))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "text to code")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file to code")
	cmd.Flags().StringVar(&encoding, "encoding", "", "file encoding (default utf-8)")
	cmd.Flags().StringVar(&name, "name", "fano", "report name")
	cmd.Flags().BoolVar(&csv, "csv", false, "write <out>/<name>_codes.csv")
	cmd.Flags().BoolVar(&hist, "histogram", false, "print the probability histogram")
	return cmd
}
