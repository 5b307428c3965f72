// Package parser decodes the XML parts of an xlsx package: the workbook
// catalog, the shared-string table and the style sheet.
package parser

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
)

// Conventional part locations inside an xlsx package.
const (
	WorkbookPart      = "xl/workbook.xml"
	SharedStringsPart = "xl/sharedStrings.xml"
	StylesPart        = "xl/styles.xml"
	WorkbookRelsPart  = "xl/_rels/workbook.xml.rels"
)

// ErrPartNotFound is returned by ReadPart when the archive has no entry with
// the requested name.
var ErrPartNotFound = errors.New("part not found")

// Package reads named parts from an xlsx archive on disk.
//
// Every call opens the archive afresh and closes it before returning, so no
// file handle or cursor state is shared between calls.
type Package struct {
	path string
}

// NewPackage returns a Package reading from the archive at path. The archive
// is not opened until a part is requested.
func NewPackage(path string) *Package {
	return &Package{path: path}
}

// Path returns the archive path.
func (p *Package) Path() string {
	return p.path
}

// HasPart reports whether the archive contains an entry named name.
func (p *Package) HasPart(name string) (bool, error) {
	r, err := zip.OpenReader(p.path)
	if err != nil {
		return false, err
	}
	defer r.Close()

	return findZipFile(&r.Reader, name) != nil, nil
}

// ReadPart returns the uncompressed contents of the entry named name.
// A missing entry yields an error wrapping ErrPartNotFound; callers that
// treat the part as optional should check HasPart first.
func (p *Package) ReadPart(name string) ([]byte, error) {
	r, err := zip.OpenReader(p.path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readZipFile(&r.Reader, name)
}

func findZipFile(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	f := findZipFile(r, name)
	if f == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrPartNotFound)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
