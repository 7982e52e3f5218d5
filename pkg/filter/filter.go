// Package filter derives date-range views and aggregates over the manifest
// collection. Everything here is a pure function of its input: callers
// recompute whenever the collection or the bounds change, nothing is cached.
package filter

import "github.com/dtnitsch/romaneio/models"

// ByDateRange keeps manifests whose date falls within the inclusive bounds.
// Bounds are ISO YYYY-MM-DD strings, so plain string comparison matches
// chronological order. An empty bound is unbounded on that side. Input order
// is preserved.
func ByDateRange(manifests []models.Manifest, startDate, endDate string) []models.Manifest {
	out := make([]models.Manifest, 0, len(manifests))
	for _, m := range manifests {
		if startDate != "" && m.Date < startDate {
			continue
		}
		if endDate != "" && m.Date > endDate {
			continue
		}
		out = append(out, m)
	}
	return out
}

// TotalValue sums invoice face values over every manifest in the sequence.
func TotalValue(manifests []models.Manifest) float64 {
	var total float64
	for _, m := range manifests {
		for _, inv := range m.Invoices {
			total += inv.Value
		}
	}
	return total
}

// TotalFreight sums derived freight over every manifest in the sequence.
func TotalFreight(manifests []models.Manifest) float64 {
	var total float64
	for _, m := range manifests {
		for _, inv := range m.Invoices {
			total += inv.Freight
		}
	}
	return total
}
