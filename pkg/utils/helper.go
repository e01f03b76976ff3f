package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

var ErrPriceNotFinite = errors.New("price must be a finite number")

// ParsePrice converts a form value to a price. Blank input is 0; NaN and
// infinities are rejected.
func ParsePrice(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ErrPriceNotFinite
	}
	return price, nil
}

// SplitFeatures flattens feature values that may be repeated and/or comma-separated.
// Blank entries are dropped.
func SplitFeatures(values ...string) []string {
	features := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				features = append(features, part)
			}
		}
	}
	return features
}
