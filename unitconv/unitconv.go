package unitconv

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNoValue reports an empty input string.
	ErrNoValue = errors.New("no value specified")
	// ErrBadValue reports input that is present but not convertible.
	ErrBadValue = errors.New("invalid value")
)

var intervalUnits = map[byte]float64{
	's': 1,
	'm': 60,
	'h': 60 * 60,
	'd': 60 * 60 * 24,
}

var bandwidthUnits = map[byte]float64{
	'k': 1 << 10,
	'm': 1 << 20,
	'g': 1 << 30,
}

// Interval converts a time interval string into seconds. The magnitude may
// carry a single unit suffix: s (seconds), m (minutes), h (hours) or
// d (days). Without a suffix the value is taken as seconds. The result
// truncates toward zero; negative intervals pass through unchanged.
func Interval(text string) (int64, error) {
	value, err := parseSuffixed(text, intervalUnits, "time interval")
	if err != nil {
		return 0, err
	}
	return int64(value), nil
}

// Bandwidth converts a bandwidth string into bytes. The magnitude may carry
// a single unit suffix: k (KiB), m (MiB) or g (GiB). Without a suffix the
// value is taken as bytes. Negative values are rejected.
func Bandwidth(text string) (uint64, error) {
	value, err := parseSuffixed(text, bandwidthUnits, "bandwidth")
	if err != nil {
		return 0, err
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: bytes value may not be negative %q", ErrBadValue, text)
	}
	return uint64(value), nil
}

// parseSuffixed reads a leading float magnitude and applies the multiplier
// named by the remainder, which must be exactly one character from units.
func parseSuffixed(text string, units map[byte]float64, what string) (float64, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: no %s value specified", ErrNoValue, what)
	}

	value, rest, err := scanFloat(text)
	if err != nil {
		return 0, err
	}

	mult := 1.0
	if rest != "" {
		if len(rest) != 1 {
			return 0, fmt.Errorf("%w: unknown %s unit %q", ErrBadValue, what, rest)
		}
		m, ok := units[lowerByte(rest[0])]
		if !ok {
			return 0, fmt.Errorf("%w: unknown %s unit %q", ErrBadValue, what, rest)
		}
		mult = m
	}

	return value * mult, nil
}

// scanFloat parses the longest leading float prefix of s and returns its
// value together with the unparsed remainder.
func scanFloat(s string) (float64, string, error) {
	t := strings.TrimLeft(s, " \t")
	n := floatPrefixLen(t)
	if n == 0 {
		return 0, "", fmt.Errorf("%w: could not convert %q to a number", ErrBadValue, s)
	}
	value, err := strconv.ParseFloat(t[:n], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, "", fmt.Errorf("%w: too big value %q", ErrBadValue, s)
		}
		return 0, "", fmt.Errorf("%w: could not convert %q to a number", ErrBadValue, s)
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, "", fmt.Errorf("%w: too big value %q", ErrBadValue, s)
	}
	return value, t[n:], nil
}

// floatPrefixLen returns the length of the longest prefix of s that forms a
// decimal floating-point number, or 0 when no digit is consumed.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			digits++
		}
		if j > i+1 || digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
