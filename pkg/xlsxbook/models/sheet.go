package models

// SheetInfo is one entry of the sheet directory.
type SheetInfo struct {
	// Index is the 0-based position in the workbook.
	Index int `json:"index" yaml:"index"`
	// Name is the sheet name, nil when the sheet element has none.
	Name *string `json:"name" yaml:"name"`
}
