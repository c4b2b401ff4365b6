package startup

import "strings"

// Category is the semantic bucket a raw CSV column header is assigned to.
type Category string

const (
	CategoryIdentity  Category = "identity"
	CategoryBasicInfo Category = "basic_info"
	CategoryFounders  Category = "founders"
	CategoryLocation  Category = "location"
	CategoryBusiness  Category = "business"
	CategoryFunding   Category = "funding"
	CategoryMetrics   Category = "metrics"
	CategorySocial    Category = "social"
	CategoryDates     Category = "dates"
	CategoryStatus    Category = "status"
	CategoryMedia     Category = "media"
	CategoryNotes     Category = "notes"
	CategorySources   Category = "sources"
	CategoryOther     Category = "other"
)

// categoryRule pairs a category with the header keywords that select it.
type categoryRule struct {
	category Category
	keywords []string
}

// categoryRules is an ordered list: a header goes to the FIRST category
// whose keyword list contains a case-insensitive substring match.
// Order is the tie-break, so this must stay a slice, not a map.
var categoryRules = []categoryRule{
	{CategoryIdentity, []string{"startup id", "item name", "company name", "name", "nome", "azienda", "startup"}},
	{CategoryBasicInfo, []string{"tagline", "description", "descrizione", "about", "differentiators", "interfaces"}},
	{CategoryFounders, []string{"founder", "ceo", "cto", "fondatore", "role"}},
	{CategoryLocation, []string{"location", "sede", "city", "città", "country", "paese", "italia", "estero"}},
	{CategoryBusiness, []string{"markets", "sector", "settore", "industry", "revenue model", "tema", "tecnologia"}},
	{CategoryFunding, []string{"funding", "finanziamenti", "investment", "valuation", "runway", "rounds", "f6s", "amount", "currency"}},
	{CategoryMetrics, []string{"score", "employees", "dipendenti", "clients", "revenue", "rev"}},
	{CategorySocial, []string{"website", "linkedin", "twitter", "facebook", "github", "angellist", "google plus"}},
	{CategoryDates, []string{"founded", "fondato", "incorporated", "contact", "updated", "finalize", "start"}},
	{CategoryStatus, []string{"status", "pipeline", "stage", "milestone", "bootcamp", "selection"}},
	{CategoryMedia, []string{"videos", "decks", "files"}},
	{CategoryNotes, []string{"notes", "tags", "analyst", "evaluators", "msg", "assigned"}},
	{CategorySources, []string{"source", "type"}},
}

// Classification maps each category to the raw headers assigned to it,
// preserving header order within a category. Rebuilt on every load;
// the underlying rows are never mutated.
type Classification struct {
	byCategory map[Category][]string
	byHeader   map[string]Category
	headers    []string
}

// ClassifyColumns assigns each header to exactly one category by
// first-match substring against the ordered rule table. Unmatched
// headers land in CategoryOther.
func ClassifyColumns(headers []string) *Classification {
	c := &Classification{
		byCategory: make(map[Category][]string),
		byHeader:   make(map[string]Category),
		headers:    headers,
	}

	for _, header := range headers {
		lower := strings.ToLower(strings.TrimSpace(header))
		category := CategoryOther

	rules:
		for _, rule := range categoryRules {
			for _, kw := range rule.keywords {
				if strings.Contains(lower, kw) {
					category = rule.category
					break rules
				}
			}
		}

		c.byCategory[category] = append(c.byCategory[category], header)
		c.byHeader[header] = category
	}

	return c
}

// Headers returns the headers assigned to a category, in column order.
func (c *Classification) Headers(cat Category) []string {
	return c.byCategory[cat]
}

// CategoryOf returns the category a header was assigned to.
func (c *Classification) CategoryOf(header string) Category {
	if cat, ok := c.byHeader[header]; ok {
		return cat
	}
	return CategoryOther
}

// AllHeaders returns every header in original column order.
func (c *Classification) AllHeaders() []string {
	return c.headers
}

// Categories returns the full ordered category list, including "other".
func Categories() []Category {
	cats := make([]Category, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		cats = append(cats, rule.category)
	}
	return append(cats, CategoryOther)
}

// CategorySizes reports how many headers landed in each non-empty
// category; used by the columns diagnostics endpoint.
func (c *Classification) CategorySizes() map[Category]int {
	sizes := make(map[Category]int)
	for cat, headers := range c.byCategory {
		if len(headers) > 0 {
			sizes[cat] = len(headers)
		}
	}
	return sizes
}

// SampleHeaders returns up to n example headers per non-empty category.
func (c *Classification) SampleHeaders(n int) map[Category][]string {
	samples := make(map[Category][]string)
	for cat, headers := range c.byCategory {
		if len(headers) == 0 {
			continue
		}
		if len(headers) > n {
			samples[cat] = headers[:n]
		} else {
			samples[cat] = headers
		}
	}
	return samples
}
