package xlsxbook

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

const (
	workbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
 xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<workbookPr date1904="1"/>
<sheets>
  <sheet name="Summary" sheetId="1" r:id="rId1"/>
  <sheet sheetId="2" r:id="rId2"/>
  <sheet name="Data" sheetId="3" r:id="rId3"/>
</sheets>
</workbook>`

	workbook1900XML = `<workbook><workbookPr defaultThemeVersion="164011"/><sheets><sheet name="Sheet1"/></sheets></workbook>`

	sharedStringsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="1" uniqueCount="1">
<si><t>plain</t></si>
<si><r><t>rich </t></r><r><rPr><b/></rPr><t>text</t></r></si>
<si/>
</sst>`

	stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<numFmts count="2">
  <numFmt numFmtId="164" formatCode="dd/mm/yyyy"/>
  <numFmt numFmtId="165" formatCode="0.000"/>
</numFmts>
<cellXfs count="5">
  <xf numFmtId="0"/>
  <xf numFmtId="14"/>
  <xf numFmtId="164"/>
  <xf numFmtId="165"/>
  <xf numFmtId="21"/>
</cellXfs>
</styleSheet>`
)

// writePackage writes an xlsx-shaped zip archive holding parts and returns
// its path.
func writePackage(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create package: %v", err)
	}
	defer f.Close()

	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(f)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := w.Write([]byte(parts[name])); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to finish package: %v", err)
	}
	return path
}

func fullPackage(t *testing.T) string {
	t.Helper()
	return writePackage(t, map[string]string{
		"[Content_Types].xml":      `<Types/>`,
		"xl/workbook.xml":          workbookXML,
		"xl/sharedStrings.xml":     sharedStringsXML,
		"xl/styles.xml":            stylesXML,
		"xl/worksheets/sheet1.xml": `<worksheet/>`,
	})
}

func names(ptrs []*string) []string {
	out := make([]string, len(ptrs))
	for i, p := range ptrs {
		if p == nil {
			out[i] = "<nil>"
		} else {
			out[i] = *p
		}
	}
	return out
}
