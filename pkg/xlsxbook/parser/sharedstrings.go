package parser

import "strings"

// maxCountHint caps the capacity reserved from the sst count attribute. The
// attribute is producer-written and only ever used as a hint.
const maxCountHint = 1 << 16

// ParseSharedStrings decodes every si record of a shared-strings part, in
// order. The result has exactly one entry per si element whatever the
// count attribute claims.
//
// A record's text is its direct t child when present. Otherwise it is the
// concatenation of the t child of each r run, in document order; runs
// without a t contribute nothing. A record with neither is "".
// Phonetic (rPh) and other children are ignored.
func ParseSharedStrings(data []byte) ([]string, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	sst := doc.FirstChild("sst")
	if sst == nil {
		return nil, errMissingRoot("sst")
	}

	hint := min(max(sst.IntAttr("count"), 0), maxCountHint)
	table := make([]string, 0, hint)
	for si := sst.FirstChild("si"); si != nil; si = si.NextSibling("si") {
		table = append(table, stringItemText(si))
	}
	return table, nil
}

func stringItemText(si *Node) string {
	// Excel writes either a single t or a list of runs. When both appear the
	// t wins and the runs are dropped.
	if t := si.FirstChild("t"); t != nil {
		return t.Text()
	}

	var sb strings.Builder
	for r := si.FirstChild("r"); r != nil; r = r.NextSibling("r") {
		sb.WriteString(r.FirstChild("t").Text())
	}
	return sb.String()
}

// LoadSharedStrings is ParseSharedStrings with every failure degraded to an
// empty table.
func LoadSharedStrings(data []byte) []string {
	table, err := ParseSharedStrings(data)
	if err != nil {
		return []string{}
	}
	return table
}
