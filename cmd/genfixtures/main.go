// Command genfixtures evaluates the fiscal-year catalog for a fixed list of
// test dates and emits the expectations for a downstream test suite, either
// as a JSON fixture file or as source snippets to paste into a test file.
//
// Usage:
//
//	go run . json -o fiscalyear_data.json
//	go run . snippets --lang ts --op fiscal_year
//	go run . catalog --from 2021 --to 2027
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/rabitt1ove/fiscalyear"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	debug      bool
	ops        []string
	output     string
	lang       string
	from, to   int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "genfixtures",
		Short:         "Generate fiscal year test fixtures",
		Long:          `Genfixtures resolves each configured date under each fiscal year definition and writes the expected fiscal year, start and end for a test suite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = newLogger(cmd.ErrOrStderr(), opts.debug)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config with dates and definitions (default: embedded)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "Write the JSON fixture file",
		Long:  `Writes an object mapping each operation to its ordered test cases. Boundaries are given as epoch seconds and as ISO-8601 UTC with milliseconds.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJSON(cmd.OutOrStdout(), opts)
		},
	}
	jsonCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	jsonCmd.Flags().StringSliceVar(&opts.ops, "op", nil, "Operations to emit (default: all)")

	snippetsCmd := &cobra.Command{
		Use:   "snippets",
		Short: "Print test case source snippets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSnippets(cmd.OutOrStdout(), opts)
		},
	}
	snippetsCmd.Flags().StringVar(&opts.lang, "lang", "ts", "Snippet language: ts or go")
	snippetsCmd.Flags().StringSliceVar(&opts.ops, "op", nil, "Operations to emit (default: all)")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print rule-derived catalog rows and check the built-in table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd.OutOrStdout(), opts)
		},
	}
	catalogCmd.Flags().IntVar(&opts.from, "from", 0, "First fiscal year to print (default: first in table)")
	catalogCmd.Flags().IntVar(&opts.to, "to", 0, "Last fiscal year to print (default: last in table)")

	rootCmd.AddCommand(jsonCmd, snippetsCmd, catalogCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("genfixtures failed", "error", err)
		os.Exit(1)
	}
}

func prepare(opts *options) (*fiscalyear.Catalog, *fixtureSet, []operation, error) {
	cat := fiscalyear.Default()
	set, err := loadFixtureSet(opts.configPath, cat)
	if err != nil {
		return nil, nil, nil, err
	}
	ops, err := parseOperations(opts.ops)
	if err != nil {
		return nil, nil, nil, err
	}
	return cat, set, ops, nil
}

func runJSON(stdout io.Writer, opts *options) error {
	cat, set, ops, err := prepare(opts)
	if err != nil {
		return err
	}
	doc := buildFixtures(cat, set, ops)

	if opts.output == "" {
		return writeJSON(stdout, doc)
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote fixtures", "operations", len(ops), "dates", len(set.dates), "path", opts.output)
	return nil
}

func runSnippets(stdout io.Writer, opts *options) error {
	cat, set, ops, err := prepare(opts)
	if err != nil {
		return err
	}
	return renderSnippets(stdout, opts.lang, set.ids, ops, buildFixtures(cat, set, ops))
}

func runCatalog(stdout io.Writer, opts *options) error {
	if opts.from != 0 && opts.to != 0 && opts.to < opts.from {
		return fmt.Errorf("--to %d is before --from %d", opts.to, opts.from)
	}
	cat := fiscalyear.Default()
	set, err := loadFixtureSet(opts.configPath, cat)
	if err != nil {
		return err
	}
	defs := make([]fiscalyear.Definition, 0, len(set.ids))
	for _, id := range set.ids {
		def, _ := cat.Definition(id)
		defs = append(defs, def)
	}

	src, err := renderCatalog(defs, opts.from, opts.to)
	if err != nil {
		return fmt.Errorf("failed to generate source: %w", err)
	}
	if _, err := stdout.Write(src); err != nil {
		return err
	}
	return checkCatalog(defs)
}
