package models

// FormatInfo describes one number-format code.
type FormatInfo struct {
	Code string `json:"code" yaml:"code"`
	// Date is true when cells with this format hold dates, times or
	// durations.
	Date bool `json:"date" yaml:"date"`
	// Kind is one of number, date, time, datetime or elapsed.
	Kind string `json:"kind" yaml:"kind"`
}
