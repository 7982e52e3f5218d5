// Package common holds the input boundary shared by the CLI actions.
// The store assumes pre-validated values, so every user-typed date and
// number is checked here before it reaches the core.
package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDate validates a user-supplied ISO date and returns it normalized.
func ParseDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t.Format("2006-01-02"), nil
}

// Today returns today's date in ISO form.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ParseAmount parses a non-negative, finite monetary amount or rate.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount %q not allowed", s)
	}
	return v, nil
}

// ParseDateRange validates the optional start/end filter bounds. Empty
// strings stay empty (unbounded).
func ParseDateRange(start, end string) (string, string, error) {
	var err error
	if start != "" {
		if start, err = ParseDate(start); err != nil {
			return "", "", err
		}
	}
	if end != "" {
		if end, err = ParseDate(end); err != nil {
			return "", "", err
		}
	}
	return start, end, nil
}
