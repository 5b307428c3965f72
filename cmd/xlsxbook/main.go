// Package main provides the CLI entry point for xlsxbook-go.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ukaji3/xlsxbook-go/internal/config"
	"github.com/ukaji3/xlsxbook-go/internal/logging"
	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook"
	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/output"
)

var (
	configPath string
	outputPath string
	noColor    bool

	v   *viper.Viper
	cfg *config.Config
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v = config.New()

	rootCmd := &cobra.Command{
		Use:   "xlsxbook",
		Short: "Inspect the workbook-level tables of xlsx files",
		Long: `xlsxbook reads the sheet list, shared strings, date styles and date
system of an xlsx workbook, and decodes sheet cells with them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ~/.xlsxbook/config.yaml)")
	flags.String("format", "json", "Output format: text, json, yaml")
	flags.Bool("pretty", false, "Pretty-print JSON output")
	flags.StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.BoolVar(&noColor, "no-color", false, "Disable ANSI color output")
	flags.Bool("concurrent", false, "Build the string and style tables in parallel")

	bindFlag(rootCmd, "output.format", "format")
	bindFlag(rootCmd, "output.pretty", "pretty")
	bindFlag(rootCmd, "log.level", "log-level")
	bindFlag(rootCmd, "open.concurrent", "concurrent")

	rootCmd.AddCommand(
		newInfoCommand(),
		newSheetsCommand(),
		newStringsCommand(),
		newCellsCommand(),
		newFmtCommand(),
	)
	return rootCmd
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(v, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	if noColor || !cfg.Output.Color || outputPath != "" {
		color.NoColor = true
	}
	return nil
}

func openWorkbook(path string) (*xlsxbook.Workbook, error) {
	wb, err := xlsxbook.Open(path, xlsxbook.Options{
		Logger:     slog.Default(),
		Concurrent: cfg.Open.Concurrent,
	})
	if err != nil {
		return nil, fmt.Errorf("open failed: %w", err)
	}
	return wb, nil
}

// emit renders value in the configured format and writes it to --output or
// stdout. text is used for the text format.
func emit(value any, text func(io.Writer)) error {
	var data []byte
	var err error

	switch format := cfg.Output.Format; format {
	case "text":
		var buf bytes.Buffer
		text(&buf)
		data = buf.Bytes()
	case "json":
		data, err = output.ToJSON(value, cfg.Output.Pretty)
		data = append(data, '\n')
	case "yaml":
		data, err = output.ToYAML(value)
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
