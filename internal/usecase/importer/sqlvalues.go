package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"amendtrack/internal/errs"
)

var (
	insertRe  = regexp.MustCompile(`(?i)^INSERT\s+\[dbo\]\.\[Amendment\]`)
	columnsRe = regexp.MustCompile(`(?i)INSERT\s+\[dbo\]\.\[Amendment\]\s+\(([^)]+)\)`)
	valuesRe  = regexp.MustCompile(`(?is)VALUES\s*\((.*)\)\s*$`)
	castRe    = regexp.MustCompile(`(?i)^CAST\(N?'(.+?)'\s+AS\s+(?:DateTime2?|Date)\)$`)
)

// isAmendmentInsert reports whether the line is an INSERT into the legacy
// Amendment table.
func isAmendmentInsert(line string) bool {
	return insertRe.MatchString(strings.TrimSpace(line))
}

// parseInsertColumns extracts the bracketed column names from an INSERT
// statement's column list.
func parseInsertColumns(line string) ([]string, error) {
	m := columnsRe.FindStringSubmatch(line)
	if m == nil {
		return nil, errs.E(errs.KindInvalid, "no column list in INSERT statement")
	}

	parts := strings.Split(m[1], ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.Trim(strings.TrimSpace(p), "[]"))
	}
	return out, nil
}

// parseInsertValues splits the VALUES clause into raw value tokens. Commas
// inside quoted strings and nested parentheses (CAST expressions) do not
// split.
func parseInsertValues(line string) ([]string, error) {
	m := valuesRe.FindStringSubmatch(line)
	if m == nil {
		return nil, errs.E(errs.KindInvalid, "no VALUES clause in INSERT statement")
	}

	src := m[1]
	values := make([]string, 0, 32)
	var current strings.Builder
	inString := false
	parenDepth := 0

	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case ch == '\'':
			// A doubled quote inside a string is an escaped quote, not a
			// terminator.
			if inString && i+1 < len(src) && src[i+1] == '\'' {
				current.WriteByte(ch)
				current.WriteByte(src[i+1])
				i++
				continue
			}
			inString = !inString
			current.WriteByte(ch)
		case ch == '(' && !inString:
			parenDepth++
			current.WriteByte(ch)
		case ch == ')' && !inString:
			parenDepth--
			current.WriteByte(ch)
		case ch == ',' && !inString && parenDepth == 0:
			values = append(values, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		values = append(values, trimmed)
	}

	return values, nil
}

// cleanValue converts a raw SQL token to a Go value: nil for NULL, string
// for (N-prefixed) quoted strings with doubled quotes unescaped, time.Time
// for CAST datetime expressions, bool for bit literals, int64/float64 for
// numbers. Anything else comes back as the raw string.
func cleanValue(raw string) any {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, "NULL") {
		return nil
	}

	if m := castRe.FindStringSubmatch(value); m != nil {
		return parseLegacyDatetime(m[1])
	}

	if strings.HasPrefix(value, "N'") && strings.HasSuffix(value, "'") {
		return strings.ReplaceAll(value[2:len(value)-1], "''", "'")
	}
	if strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		return strings.ReplaceAll(value[1:len(value)-1], "''", "'")
	}

	if value == "0" {
		return false
	}
	if value == "1" {
		return true
	}

	if strings.Contains(value, ".") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}

	return value
}

func parseLegacyDatetime(value string) any {
	layouts := []string{
		"2006-01-02T15:04:05.999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05.999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return nil
}

// decodeExport converts the raw dump bytes to a string. SQL Server's export
// tooling writes UTF-16 LE with a BOM; plain UTF-8 passes through untouched.
func decodeExport(data []byte) string {
	if len(data) >= 2 {
		var le bool
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			le = true
		case data[0] == 0xFE && data[1] == 0xFF:
			le = false
		default:
			return string(data)
		}

		body := data[2:]
		units := make([]uint16, 0, len(body)/2)
		for i := 0; i+1 < len(body); i += 2 {
			if le {
				units = append(units, uint16(body[i])|uint16(body[i+1])<<8)
			} else {
				units = append(units, uint16(body[i])<<8|uint16(body[i+1]))
			}
		}
		return string(utf16.Decode(units))
	}
	return string(data)
}
