package navigator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// naturalCompare orders names case-insensitively with digit runs compared
// by value, so "2 - Intro.flac" sorts before "10 - Outro.flac". Ties fall
// back to the raw strings to keep the order total.
func naturalCompare(a, b string) int {
	x, y := a, b
	for x != "" && y != "" {
		rx, wx := utf8.DecodeRuneInString(x)
		ry, wy := utf8.DecodeRuneInString(y)
		if isDigit(rx) && isDigit(ry) {
			nx, restX := digitRun(x)
			ny, restY := digitRun(y)
			if c := compareNumbers(nx, ny); c != 0 {
				return c
			}
			x, y = restX, restY
			continue
		}
		if lx, ly := unicode.ToLower(rx), unicode.ToLower(ry); lx != ly {
			if lx < ly {
				return -1
			}
			return 1
		}
		x, y = x[wx:], y[wy:]
	}
	switch {
	case x == "" && y != "":
		return -1
	case x != "" && y == "":
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// digitRun splits s after its leading ASCII digits.
func digitRun(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// compareNumbers compares two digit strings by value. Leading zeros only
// matter when the values are equal: "01" sorts after "1".
func compareNumbers(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
