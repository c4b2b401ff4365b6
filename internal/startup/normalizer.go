package startup

import (
	"fmt"
	"strings"

	"github.com/wepopagani/Brain/internal/observability"
)

// columnRef is a source column resolved once at classification time, so
// per-row processing never probes headers dynamically.
type columnRef struct {
	header string
	ok     bool
}

func (c columnRef) cell(row RawRow) string {
	if !c.ok {
		return ""
	}
	return row[c.header]
}

// columnMap holds the resolved best-effort source column for every
// canonical field, plus the founder-name and social columns.
type columnMap struct {
	id          columnRef
	name        columnRef
	location    columnRef
	sector      columnRef
	funding     columnRef
	description columnRef
	founded     columnRef
	employees   columnRef
	status      columnRef
	pipeline    columnRef

	founderNames []string
	social       []string
}

// preferred header names per canonical field, probed in order. First
// header containing the preferred name (case-insensitive) wins.
var (
	preferredID          = []string{"startup id"}
	preferredName        = []string{"item name", "company name", "startup name", "name"}
	preferredLocation    = []string{"location", "sede", "city"}
	preferredSector      = []string{"markets", "sector", "settore", "industry"}
	preferredFunding     = []string{"total funding", "funding", "finanziamenti", "investment"}
	preferredDescription = []string{"description", "descrizione", "tagline", "about"}
	preferredFounded     = []string{"founded", "fondato", "incorporated"}
	preferredEmployees   = []string{"employees", "dipendenti"}
	preferredStatus      = []string{"status"}
	preferredPipeline    = []string{"pipeline"}
)

// resolveColumns binds every canonical field to a source column using
// the preferred-name table and the column classification.
func resolveColumns(headers []string, class *Classification) columnMap {
	m := columnMap{
		id:          findColumn(headers, preferredID, nil),
		location:    findColumn(headers, preferredLocation, nil),
		sector:      findColumn(headers, preferredSector, nil),
		funding:     findColumn(headers, preferredFunding, nil),
		description: findColumn(headers, preferredDescription, nil),
		founded:     findColumn(headers, preferredFounded, nil),
		employees:   findColumn(headers, preferredEmployees, nil),
		status:      findColumn(headers, preferredStatus, nil),
		pipeline:    findColumn(headers, preferredPipeline, nil),
	}

	// The bare "name" probe must not bind a founder-name column.
	m.name = findColumn(headers, preferredName, func(header string) bool {
		return class.CategoryOf(header) != CategoryFounders
	})

	for _, header := range class.Headers(CategoryFounders) {
		if strings.Contains(strings.ToLower(header), "name") {
			m.founderNames = append(m.founderNames, header)
		}
	}

	m.social = class.Headers(CategorySocial)

	return m
}

// findColumn returns the first header containing any preferred name, in
// preference order. The optional accept filter can veto a header.
func findColumn(headers []string, preferred []string, accept func(string) bool) columnRef {
	for _, pref := range preferred {
		for _, header := range headers {
			if !strings.Contains(strings.ToLower(header), pref) {
				continue
			}
			if accept != nil && !accept(header) {
				continue
			}
			return columnRef{header: header, ok: true}
		}
	}
	return columnRef{}
}

// Normalizer turns raw rows plus a column classification into the
// canonical record table.
type Normalizer struct {
	logger *observability.Logger
}

// NewNormalizer creates a record normalizer.
func NewNormalizer(logger *observability.Logger) *Normalizer {
	if logger == nil {
		logger = observability.DefaultLogger()
	}
	return &Normalizer{logger: logger.WithComponent("normalizer")}
}

// Normalize builds the canonical table from a raw CSV table. Rows with
// no resolvable name are dropped; later rows sharing an identity key
// (source ID column if present, else name) are dropped, first
// occurrence wins. Deterministic and idempotent for a given raw table.
func (n *Normalizer) Normalize(table *RawTable, class *Classification) []Record {
	if table == nil || len(table.Rows) == 0 {
		return nil
	}

	cols := resolveColumns(table.Headers, class)

	records := make([]Record, 0, len(table.Rows))
	seen := make(map[string]struct{}, len(table.Rows))
	dropped := 0

	for idx, row := range table.Rows {
		name := strings.TrimSpace(cols.name.cell(row))
		if name == "" {
			dropped++
			continue
		}

		// Identity key: source ID cell when available, else name.
		id := strings.TrimSpace(cols.id.cell(row))
		key := id
		if key == "" {
			key = name
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if id == "" {
			// Positional fallback: not stable across reloads if row
			// order or filtering changes.
			id = fmt.Sprintf("startup_%d", idx)
		}

		records = append(records, n.buildRecord(id, name, row, cols))
	}

	n.logger.Info().
		Int("rows", len(table.Rows)).
		Int("records", len(records)).
		Int("nameless", dropped).
		Msg("normalized startup table")

	return records
}

func (n *Normalizer) buildRecord(id, name string, row RawRow, cols columnMap) Record {
	rec := Record{
		ID:          id,
		Name:        name,
		Sector:      ClassifySector(firstMarket(cols.sector.cell(row))),
		Funding:     ParseFunding(cols.funding.cell(row)),
		Location:    cellOrDefault(cols.location.cell(row), DefaultLocation),
		Description: cellOrDefault(cols.description.cell(row), DefaultDescription),
		Year:        ExtractYear(cols.founded.cell(row)),
		Employees:   ExtractFirstInt(cols.employees.cell(row), DefaultEmployees),
		Status:      cellOrDefault(cols.status.cell(row), DefaultStatus),
		Pipeline:    cellOrDefault(cols.pipeline.cell(row), DefaultPipeline),
		Founders:    joinFounders(row, cols.founderNames),
		SocialLinks: collectSocialLinks(row, cols.social),
	}

	rec.FundingFormatted = FormatFunding(rec.Funding)
	rec.DescriptionShort = shortDescription(rec.Description)
	for slug := range rec.SocialLinks {
		if strings.Contains(slug, "website") {
			rec.HasWebsite = true
		}
		if strings.Contains(slug, "linkedin") {
			rec.HasLinkedin = true
		}
	}

	return rec
}

// firstMarket keeps only the first entry of a comma-separated markets
// cell; breadth is discarded, not preserved as a list.
func firstMarket(raw string) string {
	if i := strings.Index(raw, ","); i >= 0 {
		return strings.TrimSpace(raw[:i])
	}
	return strings.TrimSpace(raw)
}

func cellOrDefault(raw, def string) string {
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		return trimmed
	}
	return def
}

// joinFounders concatenates the non-empty founder-name cells, capped at
// maxFounders, joined with ", ".
func joinFounders(row RawRow, founderCols []string) string {
	var founders []string
	for _, header := range founderCols {
		value := strings.TrimSpace(row[header])
		if value == "" {
			continue
		}
		founders = append(founders, value)
		if len(founders) == maxFounders {
			break
		}
	}

	if len(founders) == 0 {
		return DefaultFounders
	}
	return strings.Join(founders, ", ")
}

// collectSocialLinks keys the non-empty social cells by slugified
// header name.
func collectSocialLinks(row RawRow, socialCols []string) map[string]string {
	links := make(map[string]string)
	for _, header := range socialCols {
		value := strings.TrimSpace(row[header])
		if value != "" {
			links[SlugifyHeader(header)] = value
		}
	}
	return links
}
