package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/models"
)

// UnnamedSheet is printed in place of a missing sheet name.
const UnnamedSheet = "<unnamed>"

var (
	heading = color.New(color.Bold, color.FgCyan)
	label   = color.New(color.Bold)
	dim     = color.New(color.FgHiBlack)
	accent  = color.New(color.FgGreen)
)

// WriteSummary prints a workbook summary.
func WriteSummary(w io.Writer, data *models.WorkbookData) {
	heading.Fprintln(w, data.BookName)

	system := "1900"
	if data.Date1904 {
		system = "1904"
	}
	label.Fprint(w, "Date system:    ")
	fmt.Fprintf(w, "%s (epoch offset %g)\n", system, data.EpochOffset)
	label.Fprint(w, "Shared strings: ")
	fmt.Fprintln(w, data.StringCount)
	label.Fprint(w, "Date styles:    ")
	if len(data.DateStyles) == 0 {
		dim.Fprintln(w, "none")
	} else {
		fmt.Fprintln(w, joinInts(data.DateStyles))
	}

	label.Fprintf(w, "Sheets (%d):\n", len(data.Sheets))
	WriteSheets(w, data.Sheets)
}

// WriteSheets prints one sheet per line, prefixed with its index.
func WriteSheets(w io.Writer, sheets []models.SheetInfo) {
	for _, s := range sheets {
		dim.Fprintf(w, "%4d  ", s.Index)
		if s.Name == nil {
			dim.Fprintln(w, UnnamedSheet)
			continue
		}
		fmt.Fprintln(w, *s.Name)
	}
}

// WriteStrings prints the shared-string table, one quoted entry per line.
func WriteStrings(w io.Writer, table []string) {
	for i, s := range table {
		dim.Fprintf(w, "%6d  ", i)
		fmt.Fprintln(w, strconv.Quote(s))
	}
}

// WriteCells prints each row as its row number followed by column=value
// pairs in column order. Dates are shown in RFC 3339.
func WriteCells(w io.Writer, rows []models.CellRow) {
	for _, row := range rows {
		label.Fprintf(w, "%d:", row.R)

		cols := make([]int, 0, len(row.C))
		for k := range row.C {
			if c, err := strconv.Atoi(k); err == nil {
				cols = append(cols, c)
			}
		}
		sort.Ints(cols)

		for _, c := range cols {
			v := row.C[strconv.Itoa(c)]
			dim.Fprintf(w, " %d=", c)
			switch v := v.(type) {
			case time.Time:
				accent.Fprint(w, v.Format(time.RFC3339))
			case string:
				fmt.Fprint(w, strconv.Quote(v))
			default:
				fmt.Fprint(w, v)
			}
		}
		fmt.Fprintln(w)
	}
}

// WriteFormats prints the classification of each format code.
func WriteFormats(w io.Writer, formats []models.FormatInfo) {
	for _, f := range formats {
		if f.Date {
			accent.Fprintf(w, "%-9s", f.Kind)
		} else {
			dim.Fprintf(w, "%-9s", f.Kind)
		}
		fmt.Fprintf(w, " %s\n", strconv.Quote(f.Code))
	}
}

func joinInts(values []int) string {
	var b []byte
	for i, v := range values {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}
