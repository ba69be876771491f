package services

import (
	"fmt"
	"strconv"
	"strings"
)

// nextDocumentNumber produces the next sequential number for the
// given prefix and year, e.g. INV-2026-0007. The collection is always
// fully in memory, so the highest existing sequence is found by a
// scan rather than a counter slot.
func nextDocumentNumber(prefix string, year int, existing []string) string {
	yearPrefix := fmt.Sprintf("%s-%d-", prefix, year)
	max := 0
	for _, number := range existing {
		if !strings.HasPrefix(number, yearPrefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(number, yearPrefix))
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s%04d", yearPrefix, max+1)
}
