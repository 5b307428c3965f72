package parser

import (
	"path"
	"strings"
)

// SheetRow is one sheetData/row element of a worksheet part.
type SheetRow struct {
	// Index is the 1-based row number: the r attribute, or one past the
	// previous row when r is missing.
	Index int
	Cells []SheetCell
}

// SheetCell is one c element as stored, before any table lookup.
type SheetCell struct {
	// Ref is the r attribute (such as "B4"), empty when absent.
	Ref string
	// Style is the s attribute, the index into the cell format list.
	Style int
	// Type is the t attribute: "s", "b", "e", "str", "inlineStr", "d", "n"
	// or empty.
	Type string
	// Value is the v text, or the decoded is text for inline strings.
	Value string
}

// SheetPart resolves the part name of the sheet called name through the
// workbook's sheet list and its relationships part. It reports false when no
// sheet has that name or its relationship is missing.
func SheetPart(workbookData, relsData []byte, name string) (string, bool) {
	doc, err := Parse(workbookData)
	if err != nil {
		return "", false
	}

	var rid string
	for _, sheet := range doc.FirstChild("workbook").FirstChild("sheets").Children("sheet") {
		if n, ok := sheet.Attr("name"); ok && n == name {
			// r:id; attribute names are matched on their local part.
			rid, _ = sheet.Attr("id")
			break
		}
	}
	if rid == "" {
		return "", false
	}

	rels, err := Parse(relsData)
	if err != nil {
		return "", false
	}
	for _, rel := range rels.FirstChild("Relationships").Children("Relationship") {
		if id, _ := rel.Attr("Id"); id != rid {
			continue
		}
		target, ok := rel.Attr("Target")
		if !ok || target == "" {
			return "", false
		}
		return resolveTarget(target), true
	}
	return "", false
}

// resolveTarget turns a relationship target of xl/workbook.xml into a part
// name. Absolute targets are rooted at the package, relative ones at xl/.
func resolveTarget(target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target[1:])
	}
	return path.Join("xl", target)
}

// ParseSheetRows reads the rows and cells of a worksheet part in document
// order. Cell values are returned as stored; shared-string indices are not
// resolved here.
func ParseSheetRows(data []byte) ([]SheetRow, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	ws := doc.FirstChild("worksheet")
	if ws == nil {
		return nil, errMissingRoot("worksheet")
	}

	var rows []SheetRow
	prev := 0
	for r := ws.FirstChild("sheetData").FirstChild("row"); r != nil; r = r.NextSibling("row") {
		index, ok := r.IntAttrOK("r")
		if !ok {
			index = prev + 1
		}
		prev = index

		row := SheetRow{Index: index}
		for c := r.FirstChild("c"); c != nil; c = c.NextSibling("c") {
			cell := SheetCell{Style: c.IntAttr("s")}
			cell.Ref, _ = c.Attr("r")
			cell.Type, _ = c.Attr("t")
			if cell.Type == "inlineStr" {
				cell.Value = stringItemText(c.FirstChild("is"))
			} else {
				cell.Value = c.FirstChild("v").Text()
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
