package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/infocode/internal/app"
	"github.com/katalvlaran/infocode/report"
)

func hammingCmd() *cobra.Command {
	var (
		text  string
		flips []int
		csv   bool
	)
	cmd := &cobra.Command{
		Use:   "hamming",
		Short: "Protect the bytes of a text with Hamming(7,4) and correct injected errors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("text") {
				text = cfg.Hamming.Text
			}
			if !cmd.Flags().Changed("flip") {
				flips = cfg.Hamming.Flips
			}

			p, err := app.Protect(text, flips)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, fix := range p.Fixes {
				fmt.Fprintf(out, "byte %d: %08b  syndromes high=%d low=%d\n", i+1, p.Bytes[i], fix.High, fix.Low)
				fmt.Fprintln(out, report.RenderHamming(report.HammingRows(fix)))
			}
			recovered := p.Recovered()
			fmt.Fprintf(out, "recovered: %q\n", recovered)
			if recovered != text {
				logger.Warn("more than one error per codeword; correction produced a different text",
					zap.String("sent", text), zap.String("recovered", recovered))
			}

			if csv {
				path, err := app.WriteHamming(cfg.OutputDir, p)
				if err != nil {
					return err
				}
				logger.Info("hamming table written", zap.String("path", path))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "text whose UTF-8 bytes are encoded (default from config)")
	cmd.Flags().IntSliceVar(&flips, "flip", nil, "positions 1..14 to flip in every byte's codeword")
	cmd.Flags().BoolVar(&csv, "csv", false, "write <out>/hamming_code.csv")
	return cmd
}
