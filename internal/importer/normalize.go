package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var (
	dayFirstPattern  = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	canonicalPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	isoPattern       = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})T`)
)

// NormalizeDate converts the date forms that appear in bank exports to
// YYYY-MM-DD. Dashed or slashed dates with a trailing 4-digit year are read
// day-first: Wise and Revolut exports use the European convention, and
// committing to one interpretation keeps historical imports stable.
// Unrecognized strings pass through unchanged; rejecting them is the
// caller's decision.
func NormalizeDate(raw string) string {
	if m := dayFirstPattern.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d-%02d", m[3], month, day)
	}

	// Already canonical, possibly with a suffix.
	if canonicalPattern.MatchString(raw) {
		return raw[:10]
	}

	// ISO timestamp, e.g. 2025-01-15T10:30:00Z.
	if m := isoPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}

	return raw
}

// ParseAmount converts a locale-formatted amount string to a whole-unit
// integer. Thousands separators and whitespace are stripped, the remainder
// is parsed exactly, and the result is rounded half away from zero. The
// sign is preserved.
func ParseAmount(raw string) (int64, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return 0, err
	}
	return d.Round(0).IntPart(), nil
}

// parseDecimal strips separators and parses the remainder as a decimal.
// The returned error always names the offending input.
func parseDecimal(raw string) (decimal.Decimal, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", raw)
	}
	return d, nil
}
