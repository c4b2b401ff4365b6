package startup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFunding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"empty", "", 0},
		{"dot only", ".", 0},
		{"nan", "nan", 0},
		{"no digits", "undisclosed", 0},
		{"plain number", "150000", 150000},
		{"euro with thousands separator", "€1,200", 1200},
		{"millions suffix", "1.5M", 1.5e6},
		{"thousands suffix", "500k", 5e5},
		{"billions with dollar sign", "$3.2B", 3.2e9},
		{"currency word", "eur100000", 100000},
		{"suffix with spaces", "2.5 Mln", 2.5e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFunding(tt.raw))
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain year", "2019", 2019},
		{"year in prose", "Founded in 2015, Milan", 2015},
		{"iso date", "2021-03-15", 2021},
		{"two digit year ignored", "Oct '24", DefaultFoundedYear},
		{"empty", "", DefaultFoundedYear},
		{"out of range", "1899", DefaultFoundedYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractYear(tt.raw))
		})
	}
}

func TestExtractFirstInt(t *testing.T) {
	assert.Equal(t, 10, ExtractFirstInt("10-50 employees", 7))
	assert.Equal(t, 25, ExtractFirstInt("about 25", 7))
	assert.Equal(t, 7, ExtractFirstInt("", 7))
	assert.Equal(t, 7, ExtractFirstInt("nan", 7))
	assert.Equal(t, 7, ExtractFirstInt("unknown", 7))
}

func TestFormatFunding(t *testing.T) {
	assert.Equal(t, "€1.2B", FormatFunding(1.2e9))
	assert.Equal(t, "€1.5M", FormatFunding(1.5e6))
	assert.Equal(t, "€500K", FormatFunding(5e5))
	assert.Equal(t, "€950", FormatFunding(950))
	assert.Equal(t, "€0", FormatFunding(0))
}

func TestSlugifyHeader(t *testing.T) {
	assert.Equal(t, "google_plus", SlugifyHeader(" Google Plus "))
	assert.Equal(t, "website", SlugifyHeader("Website"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Hello World", TitleCase("hello WORLD"))
	assert.Equal(t, "3D Printing", TitleCase("3d printing"))
	assert.Equal(t, "Deep-Tech", TitleCase("deep-tech"))
	assert.Equal(t, "", TitleCase(""))
}
