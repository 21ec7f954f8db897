package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// ParseFloat parses numeric catalog cells that may carry thousands
// separators, NBSP/NNBSP padding, comma decimals or currency leftovers,
// e.g. "1 234,50", "$12,995.00", "48 000".
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", "\t", "")
	s = repl.Replace(s)
	// "1,234.5" keeps the dot; "1234,5" turns the comma into the decimal
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

// ParseInt is ParseFloat rounded to the nearest integer, for BTU and fuse
// columns that vendors sometimes export as "48,000.00".
func ParseInt(s string) (int, bool) {
	f, ok := ParseFloat(s)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}
