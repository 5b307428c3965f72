package xlsxbook

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"slices"
	"time"

	"github.com/ukaji3/xlsxbook-go/pkg/xlsxbook/parser"
	"golang.org/x/sync/errgroup"
)

// Workbook holds the workbook-level tables of one xlsx package, read once by
// Open and never modified afterwards. A *Workbook is safe for concurrent use.
type Workbook struct {
	pkg         *parser.Package
	stringTable []string
	dateStyles  map[int]struct{}
	date1904    bool
	offset      float64
}

// Open reads the date system, the shared-string table and the date styles of
// the package at path.
//
// Missing or malformed shared-strings and styles parts are read as empty.
// Failing to open the archive or to read xl/workbook.xml is an error, and no
// Workbook is returned.
func Open(path string, opts Options) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	log := opts.logger().With("path", path)
	pkg := parser.NewPackage(path)

	workbookXML, err := readPart(pkg, parser.WorkbookPart)
	if err != nil {
		return nil, err
	}
	date1904 := parser.IsEpoch1904(workbookXML)

	wb := &Workbook{
		pkg:      pkg,
		date1904: date1904,
		offset:   parser.EpochOffset(date1904),
	}

	loadStrings := func() error {
		table, err := loadStringTable(pkg, log)
		wb.stringTable = table
		return err
	}
	loadStyles := func() error {
		styles, err := loadDateStyles(pkg, log)
		wb.dateStyles = styles
		return err
	}

	if opts.Concurrent {
		var g errgroup.Group
		g.Go(loadStrings)
		g.Go(loadStyles)
		err = g.Wait()
	} else {
		err = loadStrings()
		if err == nil {
			err = loadStyles()
		}
	}
	if err != nil {
		return nil, err
	}

	log.Debug("workbook opened",
		"strings", len(wb.stringTable),
		"date_styles", len(wb.dateStyles),
		"date1904", wb.date1904)
	return wb, nil
}

func readPart(pkg *parser.Package, part string) ([]byte, error) {
	data, err := pkg.ReadPart(part)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		return nil, NewPartError(pkg.Path(), part, err)
	}
	return data, nil
}

// readOptionalPart returns nil data, without error, when the part is absent.
func readOptionalPart(pkg *parser.Package, part string, log *slog.Logger) ([]byte, error) {
	ok, err := pkg.HasPart(part)
	if err != nil {
		return nil, NewPartError(pkg.Path(), part, err)
	}
	if !ok {
		log.Debug("optional part missing", "part", part)
		return nil, nil
	}
	return readPart(pkg, part)
}

func loadStringTable(pkg *parser.Package, log *slog.Logger) ([]string, error) {
	data, err := readOptionalPart(pkg, parser.SharedStringsPart, log)
	if err != nil || data == nil {
		return []string{}, err
	}
	table, err := parser.ParseSharedStrings(data)
	if err != nil {
		log.Debug("shared strings unreadable, using empty table", "error", err)
		return []string{}, nil
	}
	return table, nil
}

func loadDateStyles(pkg *parser.Package, log *slog.Logger) (map[int]struct{}, error) {
	data, err := readOptionalPart(pkg, parser.StylesPart, log)
	if err != nil || data == nil {
		return map[int]struct{}{}, err
	}
	ss, err := parser.ParseStyleSheet(data)
	if err != nil {
		log.Debug("styles unreadable, no date styles", "error", err)
		return map[int]struct{}{}, nil
	}
	return ss.DateStyles(), nil
}

// Path returns the package path the workbook was opened from.
func (wb *Workbook) Path() string {
	return wb.pkg.Path()
}

// SheetNames lists the sheet names in workbook order; a sheet without a name
// is nil. The workbook part is read again on every call.
func (wb *Workbook) SheetNames() ([]*string, error) {
	data, err := readPart(wb.pkg, parser.WorkbookPart)
	if err != nil {
		return nil, err
	}
	return parser.SheetNames(data), nil
}

// StringTable returns a copy of the shared-string table, indexed by
// shared-string id.
func (wb *Workbook) StringTable() []string {
	return slices.Clone(wb.stringTable)
}

// SharedString returns the shared string with index i.
func (wb *Workbook) SharedString(i int) (string, bool) {
	if i < 0 || i >= len(wb.stringTable) {
		return "", false
	}
	return wb.stringTable[i], true
}

// StringCount returns the number of shared strings.
func (wb *Workbook) StringCount() int {
	return len(wb.stringTable)
}

// DateStyles returns the date-formatted style indices in ascending order.
func (wb *Workbook) DateStyles() []int {
	styles := make([]int, 0, len(wb.dateStyles))
	for i := range wb.dateStyles {
		styles = append(styles, i)
	}
	slices.Sort(styles)
	return styles
}

// IsDateStyle reports whether cells with style index i hold dates.
func (wb *Workbook) IsDateStyle(i int) bool {
	_, ok := wb.dateStyles[i]
	return ok
}

// Date1904 reports whether the workbook uses the 1904 date system.
func (wb *Workbook) Date1904() bool {
	return wb.date1904
}

// EpochOffset returns the number of days between the workbook's serial day
// zero and 1970-01-01.
func (wb *Workbook) EpochOffset() float64 {
	return wb.offset
}

// maxMillis bounds ToTime results to about 285,000 years either side of
// 1970, far beyond the last Excel serial (9999-12-31).
const maxMillis = 1 << 53

// ToTime converts a date serial to UTC, to the millisecond. Serials before
// 1900-03-01 in the 1900 system come out one day early. Results beyond
// maxMillis of 1970 are clamped to that bound; NaN yields the Unix epoch.
func (wb *Workbook) ToTime(serial float64) time.Time {
	ms := math.Round((serial - wb.offset) * 86400000)
	switch {
	case math.IsNaN(ms):
		ms = 0
	case ms > maxMillis:
		ms = maxMillis
	case ms < -maxMillis:
		ms = -maxMillis
	}
	return time.UnixMilli(int64(ms)).UTC()
}
