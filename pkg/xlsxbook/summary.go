package xlsxbook

import (
	"path/filepath"

	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/models"
)

// Summarize describes an opened workbook: its sheets, date styles, shared
// string count and date system.
func Summarize(wb *Workbook) (*models.WorkbookData, error) {
	names, err := wb.SheetNames()
	if err != nil {
		return nil, err
	}

	sheets := make([]models.SheetInfo, len(names))
	for i, name := range names {
		sheets[i] = models.SheetInfo{
			Index: i,
			Name:  name,
		}
	}

	return &models.WorkbookData{
		BookName:    filepath.Base(wb.Path()),
		Sheets:      sheets,
		DateStyles:  wb.DateStyles(),
		StringCount: wb.StringCount(),
		Date1904:    wb.Date1904(),
		EpochOffset: wb.EpochOffset(),
	}, nil
}
