package startup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const normalizerFixture = `Startup List Export,,,,,,,,,,,
Generated 2024-06-01,,,,,,,,,,,
Startup ID,Item Name,Markets,Total Funding,Location,Description,Founded,Employees,Status,Pipeline,Website,LinkedIn
ST-1,AlphaPay,"Fintech, Payments",€2.5M,Milano,Pagamenti digitali per PMI,Oct '24,10-50,Active,Seed,https://alphapay.example,https://linkedin.com/company/alphapay
ST-1,AlphaPay Clone,"Fintech",1M,Roma,Duplicato,2020,5,Active,Seed,,
,,,,Torino,Riga senza nome,,,,,,
,GreenVolt,renewable energy,500k,,,2019,,,,,
`

func loadFixture(t *testing.T) ([]Record, *RawTable, *Classification) {
	t.Helper()
	table, err := LoadCSV(writeCSV(t, normalizerFixture))
	require.NoError(t, err)

	class := ClassifyColumns(table.Headers)
	records := NewNormalizer(nil).Normalize(table, class)
	return records, table, class
}

func TestNormalizer_Normalize(t *testing.T) {
	records, _, _ := loadFixture(t)

	// Duplicate ID and nameless rows are dropped.
	require.Len(t, records, 2)

	alpha := records[0]
	assert.Equal(t, "ST-1", alpha.ID)
	assert.Equal(t, "AlphaPay", alpha.Name)
	assert.Equal(t, "Fintech", alpha.Sector)
	assert.Equal(t, 2.5e6, alpha.Funding)
	assert.Equal(t, "€2.5M", alpha.FundingFormatted)
	assert.Equal(t, "Milano", alpha.Location)
	assert.Equal(t, DefaultFoundedYear, alpha.Year)
	assert.Equal(t, 10, alpha.Employees)
	assert.Equal(t, "Seed", alpha.Pipeline)
	assert.True(t, alpha.HasWebsite)
	assert.True(t, alpha.HasLinkedin)
	assert.Equal(t, "https://alphapay.example", alpha.SocialLinks["website"])

	green := records[1]
	assert.Equal(t, "GreenVolt", green.Name)
	assert.Equal(t, "Cleantech", green.Sector)
	assert.Equal(t, 5e5, green.Funding)
	assert.Equal(t, 2019, green.Year)

	// Row defaults fill the empty cells.
	assert.Equal(t, DefaultLocation, green.Location)
	assert.Equal(t, DefaultDescription, green.Description)
	assert.Equal(t, DefaultEmployees, green.Employees)
	assert.Equal(t, DefaultStatus, green.Status)
	assert.Equal(t, DefaultPipeline, green.Pipeline)
	assert.Equal(t, DefaultFounders, green.Founders)
	assert.False(t, green.HasWebsite)
}

func TestNormalizer_PositionalIDFallback(t *testing.T) {
	records, _, _ := loadFixture(t)

	// GreenVolt has no source ID; the row index supplies one.
	assert.Equal(t, "startup_3", records[1].ID)
}

func TestNormalizer_Idempotent(t *testing.T) {
	_, table, class := loadFixture(t)

	n := NewNormalizer(nil)
	first := n.Normalize(table, class)
	second := n.Normalize(table, class)
	assert.Equal(t, first, second)
}

func TestNormalizer_DedupeByNameWithoutID(t *testing.T) {
	table := &RawTable{
		Headers: []string{"Item Name", "Markets"},
		Rows: []RawRow{
			{"Item Name": "Solo", "Markets": "saas"},
			{"Item Name": "Solo", "Markets": "fintech"},
		},
	}
	class := ClassifyColumns(table.Headers)

	records := NewNormalizer(nil).Normalize(table, class)
	require.Len(t, records, 1)
	assert.Equal(t, "SaaS", records[0].Sector)
}

func TestNormalizer_EmptyTable(t *testing.T) {
	assert.Nil(t, NewNormalizer(nil).Normalize(nil, nil))
	assert.Nil(t, NewNormalizer(nil).Normalize(&RawTable{Headers: []string{"A"}}, ClassifyColumns([]string{"A"})))
}

func TestNormalizer_DescriptionShort(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "startup tech "
	}
	table := &RawTable{
		Headers: []string{"Item Name", "Description"},
		Rows:    []RawRow{{"Item Name": "Wordy", "Description": long}},
	}
	records := NewNormalizer(nil).Normalize(table, ClassifyColumns(table.Headers))

	require.Len(t, records, 1)
	assert.Len(t, records[0].DescriptionShort, descriptionShortLen+3)
	assert.Equal(t, "...", records[0].DescriptionShort[descriptionShortLen:])
}
