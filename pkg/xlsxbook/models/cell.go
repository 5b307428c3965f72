package models

// CellRow represents a single row of decoded cell values.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// C maps column index (1-based, as a string) to the cell value: a
	// time.Time for date-styled numbers, otherwise int64, float64 or string.
	C map[string]interface{} `json:"c" yaml:"c"`
}
