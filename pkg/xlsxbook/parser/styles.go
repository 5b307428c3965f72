package parser

// NoFormatID marks a cell format whose numFmtId is missing or has no leading
// integer. It is read as General and never matches a custom format.
const NoFormatID = -1

// StyleSheet is the part of xl/styles.xml that decides which cell styles
// hold dates.
type StyleSheet struct {
	// CustomFormats maps each custom numFmtId to its format code.
	CustomFormats map[int]string
	// CellFormats holds the numFmtId of every cellXfs/xf record; the slice
	// position is the style index cells refer to. A record without a usable
	// numFmtId is NoFormatID.
	CellFormats []int
}

// ParseStyleSheet reads the custom number formats and the cell format list
// from a styles part. A missing numFmts or cellXfs section leaves the
// corresponding field empty, and a numFmt without a usable numFmtId is
// dropped. Only a document that cannot be parsed at all or lacks the
// styleSheet root is an error.
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	root := doc.FirstChild("styleSheet")
	if root == nil {
		return nil, errMissingRoot("styleSheet")
	}

	ss := &StyleSheet{CustomFormats: make(map[int]string)}
	for _, numFmt := range root.FirstChild("numFmts").Children("numFmt") {
		id, ok := numFmt.IntAttrOK("numFmtId")
		if !ok {
			continue
		}
		code, _ := numFmt.Attr("formatCode")
		ss.CustomFormats[id] = code
	}
	for _, xf := range root.FirstChild("cellXfs").Children("xf") {
		id, ok := xf.IntAttrOK("numFmtId")
		if !ok {
			id = NoFormatID
		}
		ss.CellFormats = append(ss.CellFormats, id)
	}
	return ss, nil
}

// DateStyles returns the set of style indices whose number format is a
// built-in date id or a custom format classified by IsDateFormat.
func (ss *StyleSheet) DateStyles() map[int]struct{} {
	customDates := make(map[int]bool, len(ss.CustomFormats))
	for id, code := range ss.CustomFormats {
		customDates[id] = IsDateFormat(code)
	}

	styles := make(map[int]struct{})
	for i, id := range ss.CellFormats {
		if IsBuiltInDateID(id) || customDates[id] {
			styles[i] = struct{}{}
		}
	}
	return styles
}

// LoadDateStyles returns the date style indices of a styles part. Any part
// that cannot be read as a style sheet yields an empty set: a workbook
// without a usable style table has no date cells.
func LoadDateStyles(data []byte) map[int]struct{} {
	ss, err := ParseStyleSheet(data)
	if err != nil {
		return map[int]struct{}{}
	}
	return ss.DateStyles()
}
