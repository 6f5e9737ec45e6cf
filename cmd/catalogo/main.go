// Package main provides the CLI entry point for catalogo.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ulima-investigacion/catalogo-go/internal/logging"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo"
	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/models"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogo",
		Short: "Convert congress and journal workbooks to JSON",
		Long: `catalogo reads the congress and journal spreadsheets and writes the
JSON documents used by the catalog front end.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(
		newConvertCmd("congresos", "Convert the congress workbook",
			catalogo.DefaultCongresosInput, catalogo.DefaultCongresosOutput, convertCongresos),
		newConvertCmd("revistas", "Convert the journal workbook",
			catalogo.DefaultRevistasInput, catalogo.DefaultRevistasOutput, convertRevistas),
		newCheckCmd(),
	)
	return rootCmd
}

type convertFunc func(input, output string, opts catalogo.Options) error

func convertCongresos(input, output string, opts catalogo.Options) error {
	_, err := catalogo.ConvertCongresos(input, output, opts)
	return err
}

func convertRevistas(input, output string, opts catalogo.Options) error {
	_, err := catalogo.ConvertRevistas(input, output, opts)
	return err
}

func newConvertCmd(use, short, defaultInput, defaultOutput string, convert convertFunc) *cobra.Command {
	var (
		inputPath    string
		outputPath   string
		sheet        string
		resolveLinks bool
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.WithRun(
				logging.Setup(cmd.ErrOrStderr(), logLevel, logFormat),
				"command", use,
			)

			opts := catalogo.DefaultOptions()
			opts.Sheet = sheet
			opts.ResolveLinks = resolveLinks
			opts.Logger = logger

			logger.Info("reading workbook", "input", inputPath)
			if err := convert(inputPath, outputPath, opts); err != nil {
				logger.Error("conversion failed", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", defaultInput, "Input workbook path")
	cmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutput, "Output JSON path")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to read (default: active sheet)")
	cmd.Flags().BoolVar(&resolveLinks, "resolve-links", false, "Use hyperlink targets for link columns")

	return cmd
}

func newCheckCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Print the dates of a generated congresses file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc models.CongressDocument
			if err := catalogo.ReadJSON(inputPath, &doc); err != nil {
				return fmt.Errorf("failed to read %s: %w", inputPath, err)
			}
			printDates(cmd.OutOrStdout(), doc.Congresses)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", catalogo.DefaultCongresosOutput, "Congresses JSON path")
	return cmd
}

func printDates(w io.Writer, congresses []models.Congress) {
	fmt.Fprintf(w, "%-30s | %-12s | %-12s | %s\n", "Evento", "Fecha inicio", "Fecha fin", "Deadline")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, c := range congresses {
		fmt.Fprintf(w, "%-30s | %-12s | %-12s | %s\n",
			c.Evento, orNull(c.FechaInicio), orNull(c.FechaFin), orNull(c.Deadline))
	}
}

func orNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
