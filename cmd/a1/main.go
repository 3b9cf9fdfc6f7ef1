// Package main provides the CLI entry point for a1notation-go.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ukaji3/a1notation-go/pkg/a1notation"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/models"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/output"
	"github.com/ukaji3/a1notation-go/pkg/a1notation/workbook"
)

// omitted stands in for a row argument that was left out.
const omitted = "_"

type notationFlags struct {
	sheet    string
	absolute bool
	json     bool
}

type scanFlags struct {
	outputPath string
	pretty     bool
	mode       string
	cells      bool
	sheets     []string
	sheetsDir  string
	areasDir   string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "a1",
		Short: "Convert spreadsheet coordinates to A1 notation",
		Long: `a1 converts numeric row and column coordinates into spreadsheet
A1 notation and reports the ranges found in Excel workbooks.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newLettersCmd(), newNotationCmd(), newScanCmd())
	return rootCmd
}

func newLettersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "letters N...",
		Short: "Print the column letters for each column number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid column number %q: %w", arg, err)
				}
				letters, err := a1notation.Letters(n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), letters)
			}
			return nil
		},
	}
}

func newNotationCmd() *cobra.Command {
	var flags notationFlags

	cmd := &cobra.Command{
		Use:   "notation ROW [COL [LAST_ROW [LAST_COL]]]",
		Short: "Print the A1 notation for 1 to 4 coordinates",
		Long: `notation prints A1 notation for the given coordinates:

  a1 notation 5           5:5
  a1 notation 5 2         B5
  a1 notation _ 2         B:B
  a1 notation 1 2 10      B1:B10
  a1 notation 1 2 10 11   B1:K10`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotation(cmd.OutOrStdout(), args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.sheet, "sheet", "", "Qualify the reference with a sheet name")
	cmd.Flags().BoolVar(&flags.absolute, "absolute", false, "Emit absolute references ($B$5)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the result as JSON")
	return cmd
}

type notationResult struct {
	Args []int  `json:"args"`
	Kind string `json:"kind"`
	A1   string `json:"a1"`
}

func runNotation(w io.Writer, args []string, flags notationFlags) error {
	coords, err := parseCoordinates(args)
	if err != nil {
		return err
	}

	ref, err := a1notation.FromArgs(coords...)
	if err != nil {
		return err
	}
	opts := a1notation.Options{Sheet: flags.sheet, Absolute: flags.absolute}
	a1, err := ref.Format(opts)
	if err != nil {
		return err
	}
	slog.Debug("formatted notation", "args", coords, "kind", ref.Kind.String())

	if !flags.json {
		_, err = fmt.Fprintln(w, a1)
		return err
	}
	data, err := output.ToJSON(notationResult{Args: coords, Kind: ref.Kind.String(), A1: a1}, false)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// parseCoordinates converts CLI arguments to integers. The omitted marker
// is only accepted as the row of a two-argument call.
func parseCoordinates(args []string) ([]int, error) {
	coords := make([]int, len(args))
	for i, arg := range args {
		if arg == omitted && i == 0 && len(args) == 2 {
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		coords[i] = n
	}
	return coords, nil
}

func newScanCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan [input.xlsx]",
		Short: "Report the ranges of an Excel workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&flags.mode, "mode", "standard", "Scan mode: light, standard, verbose")
	cmd.Flags().BoolVar(&flags.cells, "cells", false, "Include non-empty cells keyed by cell name")
	cmd.Flags().StringSliceVar(&flags.sheets, "sheet", nil, "Only scan the named sheet (repeatable)")
	cmd.Flags().StringVar(&flags.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	cmd.Flags().StringVar(&flags.areasDir, "print-areas-dir", "", "Directory for per-print-area output files")
	return cmd
}

func runScan(cmd *cobra.Command, inputPath string, flags scanFlags) error {
	mode, ok := workbook.ParseMode(flags.mode)
	if !ok {
		return fmt.Errorf("invalid mode: %s (must be light, standard, or verbose)", flags.mode)
	}

	opts := workbook.DefaultOptions()
	opts.Mode = mode
	opts.Sheets = flags.sheets
	if cmd.Flags().Changed("cells") {
		opts.IncludeCells = &flags.cells
	}

	wb, err := workbook.Scan(inputPath, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	jsonData, err := output.WorkbookToJSON(wb, flags.pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if flags.outputPath != "" {
		if err := os.WriteFile(flags.outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		slog.Info("wrote scan", "path", flags.outputPath)
	} else if flags.sheetsDir == "" && flags.areasDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if flags.sheetsDir != "" {
		if err := writeSheetFiles(wb.Sheets, flags.sheetsDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	if flags.areasDir != "" {
		if err := writePrintAreaFiles(workbook.PrintAreaViews(wb), flags.areasDir, flags.pretty); err != nil {
			return fmt.Errorf("failed to write print area files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(sheets map[string]models.SheetRanges, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for sheetName, sheet := range sheets {
		jsonData, err := output.SheetToJSON(&sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheetName+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

func writePrintAreaFiles(views []models.PrintAreaView, dir string, pretty bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, view := range views {
		counts[view.SheetName]++
		jsonData, err := output.PrintAreaViewToJSON(&view, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, fmt.Sprintf("%s_area%d.json", view.SheetName, counts[view.SheetName]))
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
