// Package models defines the serializable views of an opened workbook.
package models

// WorkbookData describes the workbook-level tables of one package.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetInfo `json:"sheets" yaml:"sheets"`
	// DateStyles lists the style indices that hold dates, ascending.
	DateStyles []int `json:"date_styles" yaml:"date_styles"`
	// StringCount is the number of shared strings.
	StringCount int `json:"string_count" yaml:"string_count"`
	// Date1904 is true when the workbook uses the 1904 date system.
	Date1904 bool `json:"date1904" yaml:"date1904"`
	// EpochOffset is the day offset between serial day zero and 1970-01-01.
	EpochOffset float64 `json:"epoch_offset" yaml:"epoch_offset"`
}
