package report

import "sort"

// medianFrequencyPct computes median(counts)/total*100, matching the
// warehouse's original median-of-combo-counts definition (§4.9).
func medianFrequencyPct(counts []int, total int) float64 {
	if len(counts) == 0 || total == 0 {
		return 0
	}
	sorted := make([]int, len(counts))
	copy(sorted, counts)
	sort.Ints(sorted)

	n := len(sorted)
	var med float64
	if n%2 == 1 {
		med = float64(sorted[n/2])
	} else {
		med = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return med / float64(total) * 100
}
