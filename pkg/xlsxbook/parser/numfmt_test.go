package parser

import "testing"

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"yyyy-mm-dd", true},
		{"m/d/yyyy", true},
		{"d-mmm-yy", true},
		{"h:mm:ss AM/PM", true},
		{"h:mm AM/PM", true},
		{"[Red]yyyy", true},
		{"[$-409]mmmm d, yyyy;@", true},
		{"[h]:mm:ss", true},
		{"mm:ss.0", true},
		{"YYYY", true},
		{"hh", true},
		{`yyyy "年"`, true},

		{"0.00", false},
		{"General", false},
		{"general", false},
		{"", false},
		{"   ", false},
		{"$#,##0.00", false},
		{"0%", false},
		{"0.00E+00", false},
		{"#,##0.00_);[Red](#,##0.00)", false},
		{"@", false},
		{`0 "days"`, false},
		{`"month"0`, false},
		{`\m0`, false},
		{"_m0", false},
		{"*m0", false},
		{"[Red][h]", true},
		{"[ss]", true},
		{"[Blue]0", false},
		{"[$-409]", false},
	}

	for _, tt := range tests {
		result := IsDateFormat(tt.code)
		if result != tt.expected {
			t.Errorf("IsDateFormat(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestReduceFormat(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"[Red]yyyy", "yyyy"},
		{`yyyy"-"mm`, "yyyymm"},
		{`0\ "kg"`, "0"},
		{"#,##0_)", "#,##0"},
		{"[$-F800]dddd", "dddd"},
		{"  General  ", "General"},
		{"[h]:mm:ss", "h:mm:ss"},
		{"[Red][mm]", "mm"},
	}

	for _, tt := range tests {
		result := reduceFormat(tt.code)
		if result != tt.expected {
			t.Errorf("reduceFormat(%q) = %q, expected %q", tt.code, result, tt.expected)
		}
	}
}

func TestIsBuiltInDateID(t *testing.T) {
	tests := []struct {
		id       int
		expected bool
	}{
		{0, false},
		{1, false},
		{9, false},
		{13, false},
		{14, true},
		{17, true},
		{18, true},
		{22, true},
		{23, false},
		{26, false},
		{27, true},
		{36, true},
		{37, false},
		{44, false},
		{45, true},
		{47, true},
		{48, false},
		{49, false},
		{50, true},
		{58, true},
		{59, false},
		{70, false},
		{71, true},
		{81, true},
		{82, false},
		{164, false},
		{-14, false},
	}

	for _, tt := range tests {
		result := IsBuiltInDateID(tt.id)
		if result != tt.expected {
			t.Errorf("IsBuiltInDateID(%d) = %v, expected %v", tt.id, result, tt.expected)
		}
	}
}

func TestFormatKind(t *testing.T) {
	tests := []struct {
		code     string
		expected Kind
	}{
		{"0.00", KindNumber},
		{"General", KindNumber},
		{"$#,##0.00", KindNumber},
		{"yyyy-mm-dd", KindDate},
		{"d-mmm-yy", KindDate},
		{"h:mm:ss", KindTime},
		{"m/d/yyyy h:mm", KindDateTime},
		{"[h]:mm:ss", KindElapsed},
	}

	for _, tt := range tests {
		result := FormatKind(tt.code)
		if result != tt.expected {
			t.Errorf("FormatKind(%q) = %v, expected %v", tt.code, result, tt.expected)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindNumber, "number"},
		{KindDate, "date"},
		{KindTime, "time"},
		{KindDateTime, "datetime"},
		{KindElapsed, "elapsed"},
		{Kind(42), "number"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, expected %q", tt.kind, got, tt.expected)
		}
	}
}
