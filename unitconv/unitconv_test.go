package unitconv_test

import (
	"errors"
	"testing"

	"repoconf/unitconv"
)

func TestIntervalPlainNumberIsSeconds(t *testing.T) {
	got, err := unitconv.Interval("10")
	if err != nil {
		t.Fatalf("Interval returned error: %v", err)
	}
	if got != 10 {
		t.Fatalf("unexpected seconds: got %d want 10", got)
	}
}

func TestIntervalUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"30s", 30},
		{"2m", 120},
		{"1h", 3600},
		{"1d", 86400},
		{"2M", 120},
		{"1.5h", 5400},
		{"0", 0},
	}
	for _, tc := range cases {
		got, err := unitconv.Interval(tc.in)
		if err != nil {
			t.Fatalf("Interval(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Interval(%q): got %d want %d", tc.in, got, tc.want)
		}
	}
}

func TestIntervalTruncatesTowardZero(t *testing.T) {
	got, err := unitconv.Interval("1.9")
	if err != nil {
		t.Fatalf("Interval returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected truncation toward zero, got %d", got)
	}
}

func TestIntervalNegativePassesThrough(t *testing.T) {
	got, err := unitconv.Interval("-5m")
	if err != nil {
		t.Fatalf("Interval returned error: %v", err)
	}
	if got != -300 {
		t.Fatalf("unexpected seconds: got %d want -300", got)
	}
}

func TestIntervalRejectsNonNumeric(t *testing.T) {
	if _, err := unitconv.Interval("bogus"); !errors.Is(err, unitconv.ErrBadValue) {
		t.Fatalf("expected ErrBadValue, got %v", err)
	}
}

func TestIntervalRejectsUnknownUnit(t *testing.T) {
	if _, err := unitconv.Interval("5x"); !errors.Is(err, unitconv.ErrBadValue) {
		t.Fatalf("expected ErrBadValue for unknown unit, got %v", err)
	}
	if _, err := unitconv.Interval("5minutes"); !errors.Is(err, unitconv.ErrBadValue) {
		t.Fatalf("expected ErrBadValue for long unit, got %v", err)
	}
}

func TestIntervalRejectsEmpty(t *testing.T) {
	if _, err := unitconv.Interval(""); !errors.Is(err, unitconv.ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
}

func TestIntervalRejectsOverflow(t *testing.T) {
	if _, err := unitconv.Interval("1e999"); !errors.Is(err, unitconv.ErrBadValue) {
		t.Fatalf("expected ErrBadValue for overflow, got %v", err)
	}
}

func TestBandwidthUnits(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"512", 512},
		{"1k", 1024},
		{"10M", 10485760},
		{"2g", 2 * 1024 * 1024 * 1024},
		{"0.5k", 512},
	}
	for _, tc := range cases {
		got, err := unitconv.Bandwidth(tc.in)
		if err != nil {
			t.Fatalf("Bandwidth(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Bandwidth(%q): got %d want %d", tc.in, got, tc.want)
		}
	}
}

func TestBandwidthRejectsNegative(t *testing.T) {
	if _, err := unitconv.Bandwidth("-5"); !errors.Is(err, unitconv.ErrBadValue) {
		t.Fatalf("expected ErrBadValue for negative bytes, got %v", err)
	}
}

func TestBandwidthRejectsEmpty(t *testing.T) {
	if _, err := unitconv.Bandwidth(""); !errors.Is(err, unitconv.ErrNoValue) {
		t.Fatalf("expected ErrNoValue, got %v", err)
	}
}

func TestBandwidthRejectsUnknownUnit(t *testing.T) {
	if _, err := unitconv.Bandwidth("5d"); !errors.Is(err, unitconv.ErrBadValue) {
		t.Fatalf("expected ErrBadValue for unknown unit, got %v", err)
	}
}
