package startup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyColumns(t *testing.T) {
	headers := []string{
		"Startup ID",
		"Item Name",
		"Markets",
		"Total Funding",
		"Location",
		"Description",
		"Founded",
		"Employees",
		"Status",
		"Website",
		"LinkedIn",
		"Founder 1 Role",
		"Quarterly Report",
	}

	class := ClassifyColumns(headers)

	assert.Equal(t, CategoryIdentity, class.CategoryOf("Startup ID"))
	assert.Equal(t, CategoryIdentity, class.CategoryOf("Item Name"))
	assert.Equal(t, CategoryBusiness, class.CategoryOf("Markets"))
	assert.Equal(t, CategoryFunding, class.CategoryOf("Total Funding"))
	assert.Equal(t, CategoryLocation, class.CategoryOf("Location"))
	assert.Equal(t, CategoryBasicInfo, class.CategoryOf("Description"))
	assert.Equal(t, CategoryDates, class.CategoryOf("Founded"))
	assert.Equal(t, CategoryMetrics, class.CategoryOf("Employees"))
	assert.Equal(t, CategoryStatus, class.CategoryOf("Status"))
	assert.Equal(t, CategorySocial, class.CategoryOf("Website"))
	assert.Equal(t, CategorySocial, class.CategoryOf("LinkedIn"))
	assert.Equal(t, CategoryFounders, class.CategoryOf("Founder 1 Role"))
	assert.Equal(t, CategoryOther, class.CategoryOf("Quarterly Report"))

	assert.Equal(t, headers, class.AllHeaders())
	assert.Equal(t, []string{"Website", "LinkedIn"}, class.Headers(CategorySocial))
}

func TestClassifyColumns_FirstMatchWins(t *testing.T) {
	// "Startup Funding" matches both identity ("startup") and funding
	// ("funding"); the earlier category wins.
	class := ClassifyColumns([]string{"Startup Funding"})
	assert.Equal(t, CategoryIdentity, class.CategoryOf("Startup Funding"))
}

func TestClassification_SampleHeaders(t *testing.T) {
	class := ClassifyColumns([]string{"Website", "LinkedIn", "Twitter", "Facebook", "GitHub", "AngelList"})

	samples := class.SampleHeaders(5)
	require.Contains(t, samples, CategorySocial)
	assert.Len(t, samples[CategorySocial], 5)

	sizes := class.CategorySizes()
	assert.Equal(t, 6, sizes[CategorySocial])
}
