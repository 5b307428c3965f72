package xlsxbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/models"
	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/parser"
	"github.com/xuri/excelize/v2"
)

// ReadCells decodes the cells of a sheet using the workbook's tables.
// It returns a slice of CellRow containing non-empty rows.
//
// Shared-string cells are looked up in the workbook's string table. Numbers
// whose style index is a date style become time.Time values via the
// workbook's epoch offset; other numbers are parsed as int64 or float64
// where possible. Booleans become bool; every other type stays a string.
// Empty cells and shared-string indices outside the table are skipped.
func ReadCells(wb *Workbook, sheetName string) ([]models.CellRow, error) {
	part, err := wb.sheetPart(sheetName)
	if err != nil {
		return nil, err
	}
	data, err := readPart(wb.pkg, part)
	if err != nil {
		return nil, err
	}
	rows, err := parser.ParseSheetRows(data)
	if err != nil {
		return nil, NewPartError(wb.Path(), part, err)
	}

	var result []models.CellRow
	for _, row := range rows {
		cellMap := make(map[string]interface{})

		col := 0
		for _, cell := range row.Cells {
			if cell.Ref != "" {
				c, _, err := excelize.CellNameToCoordinates(cell.Ref)
				if err != nil {
					return nil, NewPartError(wb.Path(), part, err)
				}
				col = c
			} else {
				col++
			}

			if value, ok := decodeCell(wb, cell); ok {
				cellMap[strconv.Itoa(col)] = value
			}
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{
				R: row.Index,
				C: cellMap,
			})
		}
	}

	return result, nil
}

// sheetPart finds the worksheet part of the sheet called name.
func (wb *Workbook) sheetPart(name string) (string, error) {
	workbookXML, err := readPart(wb.pkg, parser.WorkbookPart)
	if err != nil {
		return "", err
	}
	relsXML, err := readPart(wb.pkg, parser.WorkbookRelsPart)
	if err != nil {
		return "", err
	}
	part, ok := parser.SheetPart(workbookXML, relsXML, name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return part, nil
}

func decodeCell(wb *Workbook, cell parser.SheetCell) (interface{}, bool) {
	if cell.Value == "" {
		return nil, false
	}

	switch cell.Type {
	case "s":
		i, err := strconv.Atoi(strings.TrimSpace(cell.Value))
		if err != nil {
			return nil, false
		}
		s, ok := wb.SharedString(i)
		if !ok || s == "" {
			return nil, false
		}
		return s, true
	case "b":
		return cell.Value == "1", true
	case "", "n":
		if !wb.IsDateStyle(cell.Style) {
			return parseValue(cell.Value), true
		}
		serial, err := strconv.ParseFloat(cell.Value, 64)
		if err != nil {
			return cell.Value, true
		}
		return wb.ToTime(serial), true
	default:
		// str, inlineStr, e, d
		return cell.Value, true
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
