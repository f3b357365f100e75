package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)
	hexPrefix   = regexp.MustCompile(`^([+-]?)0[xX]([0-9a-fA-F]+)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseFloatPrefix reads the longest numeric prefix of v, the way form inputs are read:
// "12abc" is 12, " 3.5" is 3.5 and "abc" does not parse. Numbers pass through unchanged.
func ParseFloatPrefix(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case string:
		return parseFloatText(n)
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

// ParseIntPrefix reads the leading integer of v: "3.7" is 3 and "0x1A" is 26.
// Floats are truncated toward zero.
func ParseIntPrefix(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case string:
		return parseIntText(n)
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

func parseFloatText(s string) (float64, bool) {
	match := floatPrefix.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if match == "" {
		return 0, false
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return num, true
}

func parseIntText(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	if m := hexPrefix.FindStringSubmatch(s); m != nil {
		num, err := strconv.ParseInt(m[2], 16, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		if m[1] == "-" {
			num = -num
		}

		return int(num), true
	}

	match := intPrefix.FindString(s)
	if match == "" {
		return 0, false
	}

	num, err := strconv.ParseInt(match, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}

	return int(num), true
}
