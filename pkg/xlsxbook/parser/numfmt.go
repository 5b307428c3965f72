package parser

import (
	"strings"

	"github.com/xuri/nfp"
)

// Kind describes what a number format displays.
type Kind int

const (
	// KindNumber is any format that is not a date or time.
	KindNumber Kind = iota
	// KindDate shows calendar parts only (year, month, day).
	KindDate
	// KindTime shows clock parts only (hour, minute, second, AM/PM).
	KindTime
	// KindDateTime shows both calendar and clock parts.
	KindDateTime
	// KindElapsed shows a duration such as [h]:mm:ss.
	KindElapsed
)

func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindElapsed:
		return "elapsed"
	default:
		return "number"
	}
}

// IsBuiltInDateID reports whether id is one of the numFmtId values reserved
// by ECMA-376 §18.8.30 for date, time and elapsed-time formats. Such ids
// denote a date even when the package defines no format code for them.
//
//	14–22   dates and times (m/d/yyyy ... m/d/yy h:mm)
//	27–36   East Asian dates
//	45–47   mm:ss, [h]:mm:ss, mm:ss.0
//	50–58   East Asian dates (variant set)
//	71–81   Thai dates and times
func IsBuiltInDateID(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	case id >= 71 && id <= 81:
		return true
	}
	return false
}

// IsDateFormat reports whether a number format code displays a date, a time
// or an elapsed duration.
//
// Quoted literals, the character after an escape (\, _ or *) and bracketed
// sections such as [Red] or [$-409] are ignored; the elapsed markers [h],
// [mm] and [ss] are kept. What remains is a date format when it contains a
// y, m, d, h or s token (any case) or an AM/PM marker. "General" and the
// empty code are never dates.
func IsDateFormat(code string) bool {
	reduced := reduceFormat(code)
	if reduced == "" || strings.EqualFold(reduced, "general") {
		return false
	}

	upper := strings.ToUpper(reduced)
	if strings.Contains(upper, "AM/PM") || strings.Contains(upper, "A/P") {
		return true
	}
	return strings.ContainsAny(upper, "YMDHS")
}

// reduceFormat strips everything from a format code that cannot be a date
// token: quoted text, escaped characters and [bracketed] sections.
func reduceFormat(code string) string {
	const (
		plain = iota
		quoted
		escaped
		bracketed
	)

	state := plain
	var s, bracket strings.Builder
	for _, c := range code {
		switch state {
		case quoted:
			if c == '"' {
				state = plain
			}
		case escaped:
			state = plain
		case bracketed:
			if c != ']' {
				bracket.WriteRune(c)
				continue
			}
			// [h], [mm] and [ss] are elapsed-time tokens, not tags.
			if b := bracket.String(); b != "" && strings.Trim(b, "hHmMsS") == "" {
				s.WriteString(b)
			}
			bracket.Reset()
			state = plain
		default:
			switch c {
			case '"':
				state = quoted
			case '\\', '_', '*':
				state = escaped
			case '[':
				state = bracketed
			default:
				s.WriteRune(c)
			}
		}
	}
	return strings.TrimSpace(s.String())
}

// FormatKind classifies a format code as a plain number or one of the
// date/time kinds. Codes rejected by IsDateFormat are always KindNumber.
func FormatKind(code string) Kind {
	if !IsDateFormat(code) {
		return KindNumber
	}

	var hasDate, hasTime, hasElapsed, hasMonthOrMinute bool
	ps := nfp.NumberFormatParser()
	for _, section := range ps.Parse(code) {
		for _, tok := range section.Items {
			switch tok.TType {
			case nfp.TokenTypeElapsedDateTimes:
				hasElapsed = true
			case nfp.TokenTypeDateTimes:
				upper := strings.ToUpper(tok.TValue)
				switch {
				case upper == "":
				case strings.HasPrefix(upper, "A"):
					// AM/PM, A/P
					hasTime = true
				case upper[0] == 'H' || upper[0] == 'S':
					hasTime = true
				case upper[0] == 'M' && len(upper) <= 2:
					hasMonthOrMinute = true
				default:
					hasDate = true
				}
			}
		}
	}

	// A lone m or mm is a month unless a clock token sits in the same code.
	if hasMonthOrMinute && !hasTime {
		hasDate = true
	}

	switch {
	case hasElapsed:
		return KindElapsed
	case hasDate && hasTime:
		return KindDateTime
	case hasTime:
		return KindTime
	default:
		return KindDate
	}
}
