package startup

import (
	"math"
	"sort"
	"strings"
)

// SectorStats aggregates one sector group.
type SectorStats struct {
	Count         int     `json:"count"`
	TotalFunding  float64 `json:"total_funding"`
	AvgFunding    float64 `json:"avg_funding"`
	MedianFunding float64 `json:"median_funding"`
	AvgEmployees  float64 `json:"avg_employees"`
}

// TopFunded is one entry of the funding leaderboard.
type TopFunded struct {
	Name    string  `json:"nome"`
	Funding float64 `json:"finanziamenti"`
	Sector  string  `json:"settore"`
}

// FundingStats holds the global funding analysis.
type FundingStats struct {
	TotalFunding    float64            `json:"total_funding"`
	AverageFunding  float64            `json:"average_funding"`
	MedianFunding   float64            `json:"median_funding"`
	TopFunded       []TopFunded        `json:"top_funded"`
	FundingBySector map[string]float64 `json:"funding_by_sector"`
}

// SectorCount pairs a sector label with its record count.
type SectorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SectorAnalytics groups the table by sector and computes per-group
// count, funding sum/mean/median, and mean employees, all rounded to
// two decimals. An empty table yields an empty map.
func SectorAnalytics(records []Record) map[string]SectorStats {
	result := make(map[string]SectorStats)
	if len(records) == 0 {
		return result
	}

	grouped := make(map[string][]Record)
	for _, rec := range records {
		grouped[rec.Sector] = append(grouped[rec.Sector], rec)
	}

	for sector, group := range grouped {
		fundings := make([]float64, len(group))
		var fundingSum, employeeSum float64
		for i, rec := range group {
			fundings[i] = rec.Funding
			fundingSum += rec.Funding
			employeeSum += float64(rec.Employees)
		}

		n := float64(len(group))
		result[sector] = SectorStats{
			Count:         len(group),
			TotalFunding:  round2(fundingSum),
			AvgFunding:    round2(fundingSum / n),
			MedianFunding: round2(median(fundings)),
			AvgEmployees:  round2(employeeSum / n),
		}
	}

	return result
}

// topFundedLimit caps the funding leaderboard.
const topFundedLimit = 10

// FundingAnalytics computes the global funding view: totals, the
// top-10 leaderboard (funding descending, table order on ties), and
// per-sector sums. Zero-valued for an empty table, never an error.
func FundingAnalytics(records []Record) FundingStats {
	stats := FundingStats{
		TopFunded:       []TopFunded{},
		FundingBySector: make(map[string]float64),
	}
	if len(records) == 0 {
		return stats
	}

	fundings := make([]float64, len(records))
	for i, rec := range records {
		fundings[i] = rec.Funding
		stats.TotalFunding += rec.Funding
		stats.FundingBySector[rec.Sector] += rec.Funding
	}
	stats.AverageFunding = stats.TotalFunding / float64(len(records))
	stats.MedianFunding = median(fundings)

	ranked := make([]Record, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Funding > ranked[j].Funding
	})
	if len(ranked) > topFundedLimit {
		ranked = ranked[:topFundedLimit]
	}
	for _, rec := range ranked {
		stats.TopFunded = append(stats.TopFunded, TopFunded{
			Name:    rec.Name,
			Funding: rec.Funding,
			Sector:  rec.Sector,
		})
	}

	return stats
}

// Search matches query case-insensitively against name, sector,
// description, and founders. Results are deduplicated by
// (name, sector, location), sorted by funding descending, and capped at
// limit. An empty query matches every record; that is documented
// behavior, not a bug.
func Search(records []Record, query string, limit int) []Record {
	if limit <= 0 {
		limit = 50
	}
	q := strings.ToLower(query)

	type identity struct {
		name, sector, location string
	}
	seen := make(map[identity]struct{})

	var matched []Record
	for _, rec := range records {
		if !strings.Contains(strings.ToLower(rec.Name), q) &&
			!strings.Contains(strings.ToLower(rec.Sector), q) &&
			!strings.Contains(strings.ToLower(rec.Description), q) &&
			!strings.Contains(strings.ToLower(rec.Founders), q) {
			continue
		}

		key := identity{rec.Name, rec.Sector, rec.Location}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matched = append(matched, rec)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Funding > matched[j].Funding
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// BySector returns every record whose sector contains the given label
// case-insensitively. The table is already deduplicated, so no further
// identity filtering is needed; callers truncate for paging.
func BySector(records []Record, sector string) []Record {
	needle := strings.ToLower(strings.TrimSpace(sector))

	var matched []Record
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Sector), needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// SectorCounts lists the distinct sectors with their record counts,
// largest first.
func SectorCounts(records []Record) []SectorCount {
	counts := make(map[string]int)
	for _, rec := range records {
		if sector := strings.TrimSpace(rec.Sector); sector != "" {
			counts[sector]++
		}
	}

	result := make([]SectorCount, 0, len(counts))
	for sector, count := range counts {
		result = append(result, SectorCount{Name: sector, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// median of an unsorted slice; averages the middle pair for even
// lengths.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
