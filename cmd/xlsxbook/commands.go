package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook"
	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/models"
	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/output"
	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/parser"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.xlsx>",
		Short: "Show sheets, date styles, string count and date system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			data, err := xlsxbook.Summarize(wb)
			if err != nil {
				return err
			}
			return emit(data, func(w io.Writer) { output.WriteSummary(w, data) })
		},
	}
}

func newSheetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <file.xlsx>",
		Short: "List sheet names in workbook order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			names, err := wb.SheetNames()
			if err != nil {
				return err
			}
			sheets := make([]models.SheetInfo, len(names))
			for i, name := range names {
				sheets[i] = models.SheetInfo{Index: i, Name: name}
			}
			return emit(sheets, func(w io.Writer) { output.WriteSheets(w, sheets) })
		},
	}
}

func newStringsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "strings <file.xlsx>",
		Short: "Print the shared-string table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			table := wb.StringTable()
			return emit(table, func(w io.Writer) { output.WriteStrings(w, table) })
		},
	}
}

func newCellsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cells <file.xlsx> <sheet>",
		Short: "Decode the cells of a sheet, converting date-styled numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openWorkbook(args[0])
			if err != nil {
				return err
			}
			rows, err := xlsxbook.ReadCells(wb, args[1])
			if err != nil {
				return err
			}
			return emit(rows, func(w io.Writer) { output.WriteCells(w, rows) })
		},
	}
}

func newFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <code>...",
		Short: "Classify number-format codes",
		Long:  "Reports whether each number-format code displays a date, and which kind of date/time value it shows.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := make([]models.FormatInfo, len(args))
			for i, code := range args {
				formats[i] = models.FormatInfo{
					Code: code,
					Date: parser.IsDateFormat(code),
					Kind: parser.FormatKind(code).String(),
				}
			}
			return emit(formats, func(w io.Writer) { output.WriteFormats(w, formats) })
		},
	}
}
