package parser

// Epoch offsets: days from each date system's day zero to 1970-01-01.
// The 1900 system counts the nonexistent 1900-02-29, so its serials run
// 1462 days ahead of the 1904 system's.
const (
	EpochOffset1900 = 25569.0
	EpochOffset1904 = 24107.0
)

// SheetNames lists the name attribute of each workbook/sheets/sheet element
// in document order. A sheet without a name yields nil, not "". A part that
// cannot be parsed, or lacks the workbook or sheets element, yields an empty
// list.
func SheetNames(data []byte) []*string {
	names := []*string{}

	doc, err := Parse(data)
	if err != nil {
		return names
	}
	for _, sheet := range doc.FirstChild("workbook").FirstChild("sheets").Children("sheet") {
		if name, ok := sheet.Attr("name"); ok {
			names = append(names, &name)
		} else {
			names = append(names, nil)
		}
	}
	return names
}

// IsEpoch1904 reports whether workbook/workbookPr/@date1904 holds the integer
// 1. Any other value, or any missing element or attribute, means the 1900
// date system.
func IsEpoch1904(data []byte) bool {
	doc, err := Parse(data)
	if err != nil {
		return false
	}
	pr := doc.FirstChild("workbook").FirstChild("workbookPr")
	if _, ok := pr.Attr("date1904"); !ok {
		return false
	}
	return pr.IntAttr("date1904") == 1
}

// EpochOffset returns the day offset of the 1904 or 1900 date system.
func EpochOffset(date1904 bool) float64 {
	if date1904 {
		return EpochOffset1904
	}
	return EpochOffset1900
}
