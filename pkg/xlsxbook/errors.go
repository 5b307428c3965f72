package xlsxbook

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a zip archive.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates no sheet with the requested name, or no part
// for it, exists in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// PartError reports a failure to read one part of the package.
type PartError struct {
	Path string
	Part string
	Err  error
}

func (e *PartError) Error() string {
	return fmt.Sprintf("%s: reading part %q: %v", e.Path, e.Part, e.Err)
}

func (e *PartError) Unwrap() error {
	return e.Err
}

// NewPartError creates a new PartError.
func NewPartError(path, part string, err error) *PartError {
	return &PartError{
		Path: path,
		Part: part,
		Err:  err,
	}
}
