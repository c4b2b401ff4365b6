package startup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyticsFixture() []Record {
	return []Record{
		{Name: "AlphaPay", Sector: "Fintech", Location: "Milano", Funding: 2e6, Employees: 20, Description: "Pagamenti digitali", Founders: "Anna Rossi"},
		{Name: "BetaLend", Sector: "Fintech", Location: "Roma", Funding: 1e6, Employees: 10, Description: "Prestiti online", Founders: "Unknown"},
		{Name: "GreenVolt", Sector: "Cleantech", Location: "Torino", Funding: 5e5, Employees: 5, Description: "Energia solare", Founders: "Unknown"},
	}
}

func TestSectorAnalytics(t *testing.T) {
	stats := SectorAnalytics(analyticsFixture())
	require.Len(t, stats, 2)

	fintech := stats["Fintech"]
	assert.Equal(t, 2, fintech.Count)
	assert.Equal(t, 3e6, fintech.TotalFunding)
	assert.Equal(t, 1.5e6, fintech.AvgFunding)
	assert.Equal(t, 1.5e6, fintech.MedianFunding)
	assert.Equal(t, 15.0, fintech.AvgEmployees)

	clean := stats["Cleantech"]
	assert.Equal(t, 1, clean.Count)
	assert.Equal(t, 5e5, clean.TotalFunding)
}

func TestSectorAnalytics_Empty(t *testing.T) {
	assert.Empty(t, SectorAnalytics(nil))
}

func TestFundingAnalytics(t *testing.T) {
	stats := FundingAnalytics(analyticsFixture())

	assert.Equal(t, 3.5e6, stats.TotalFunding)
	assert.InDelta(t, 3.5e6/3, stats.AverageFunding, 0.01)
	assert.Equal(t, 1e6, stats.MedianFunding)
	assert.Equal(t, 3e6, stats.FundingBySector["Fintech"])

	require.Len(t, stats.TopFunded, 3)
	assert.Equal(t, "AlphaPay", stats.TopFunded[0].Name)
	assert.Equal(t, "GreenVolt", stats.TopFunded[2].Name)
}

func TestFundingAnalytics_TopFundedCap(t *testing.T) {
	var records []Record
	for i := 0; i < 15; i++ {
		records = append(records, Record{Name: "S", Sector: "SaaS", Funding: float64(i)})
	}

	stats := FundingAnalytics(records)
	assert.Len(t, stats.TopFunded, topFundedLimit)
	assert.Equal(t, 14.0, stats.TopFunded[0].Funding)
}

func TestFundingAnalytics_Empty(t *testing.T) {
	stats := FundingAnalytics(nil)
	assert.Zero(t, stats.TotalFunding)
	assert.Empty(t, stats.TopFunded)
	assert.Empty(t, stats.FundingBySector)
}

func TestSearch(t *testing.T) {
	records := analyticsFixture()

	matched := Search(records, "pagamenti", 50)
	require.Len(t, matched, 1)
	assert.Equal(t, "AlphaPay", matched[0].Name)

	// Sector matches too, ordered by funding descending.
	matched = Search(records, "fintech", 50)
	require.Len(t, matched, 2)
	assert.Equal(t, "AlphaPay", matched[0].Name)

	// Founder names are searchable.
	matched = Search(records, "rossi", 50)
	require.Len(t, matched, 1)

	// An empty query matches everything.
	assert.Len(t, Search(records, "", 50), 3)

	assert.Empty(t, Search(records, "nothing here", 50))
}

func TestSearch_DedupeAndLimit(t *testing.T) {
	records := []Record{
		{Name: "Twin", Sector: "SaaS", Location: "Milano", Funding: 1},
		{Name: "Twin", Sector: "SaaS", Location: "Milano", Funding: 2},
		{Name: "Other", Sector: "SaaS", Location: "Roma", Funding: 3},
	}

	matched := Search(records, "saas", 50)
	require.Len(t, matched, 2)

	matched = Search(records, "saas", 1)
	assert.Len(t, matched, 1)
}

func TestBySector(t *testing.T) {
	records := analyticsFixture()

	matched := BySector(records, "fintech")
	assert.Len(t, matched, 2)

	matched = BySector(records, " Clean ")
	require.Len(t, matched, 1)
	assert.Equal(t, "GreenVolt", matched[0].Name)

	assert.Empty(t, BySector(records, "gaming"))
}

func TestSectorCounts(t *testing.T) {
	counts := SectorCounts(analyticsFixture())
	require.Len(t, counts, 2)
	assert.Equal(t, SectorCount{Name: "Fintech", Count: 2}, counts[0])
	assert.Equal(t, SectorCount{Name: "Cleantech", Count: 1}, counts[1])
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 2.0, median([]float64{2}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 3, 2}))
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
}
