// Package core provides amount parsing and formatting utilities.
//
// This file contains functions for parsing monetary amounts from user
// input. Amounts are plain float64 values so the persisted document
// carries JSON numbers; comparisons elsewhere use tolerances, never
// exact equality.
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts a decimal string to a positive amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators.
// Returns an error for invalid formats, negative values, or zero.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-1")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return 0, err
	}
	if err := validateAmount(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseSalary parses a non-negative decimal. Zero is a legal salary;
// the proportional split handles an all-zero pool explicitly.
func ParseSalary(s string) (float64, error) {
	v, err := parseDecimal(s)
	if err != nil {
		return 0, ErrInvalidSalary
	}
	if v < 0 {
		return 0, ErrInvalidSalary
	}
	return v, nil
}

// FormatAmount renders an amount with two decimal places for display.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func parseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}
