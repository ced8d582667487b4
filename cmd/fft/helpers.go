package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danchopon/FeetForTarantino/internal/watchlist"
)

// parseOrdinals turns command arguments like "1 3 5" (commas tolerated)
// into list positions. Validation against the list happens later; this only
// rejects values that are not positive integers.
func parseOrdinals(args []string) ([]int, error) {
	var ordinals []int
	for _, arg := range args {
		for _, piece := range strings.Split(arg, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			n, err := strconv.Atoi(piece)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid list position %q", piece)
			}
			ordinals = append(ordinals, n)
		}
	}
	if len(ordinals) == 0 {
		return nil, fmt.Errorf("at least one list position is required")
	}
	return ordinals, nil
}

func formatOrdinals(ordinals []int) string {
	parts := make([]string, len(ordinals))
	for i, n := range ordinals {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// itemSuffix renders the metadata tail of a listing line, e.g. " (2021, 8.1)".
func itemSuffix(item *watchlist.Item) string {
	var parts []string
	if item.Year != nil {
		parts = append(parts, strconv.Itoa(*item.Year))
	}
	if item.Rating != nil {
		parts = append(parts, fmt.Sprintf("%.1f", *item.Rating))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
