package startup

import "strings"

// DefaultSector is returned for empty or missing market strings.
const DefaultSector = "Technology"

// sectorRule pairs a canonical sector label with the keywords that
// select it.
type sectorRule struct {
	label    string
	keywords []string
}

// sectorRules is an ordered list: a raw market string maps to the FIRST
// label with a case-insensitive substring match. Order is the tie-break
// (e.g. "blockchain" resolves to Fintech, not Web3).
var sectorRules = []sectorRule{
	{"Fintech", []string{"fintech", "finance", "banking", "payments", "financial", "blockchain", "crypto", "defi", "insurtech", "wealthtech", "regtech", "lending"}},
	{"Healthtech", []string{"health", "medical", "healthcare", "biotech", "pharma", "medtech", "telemedicine", "digital health", "diagnostics", "therapeutics"}},
	{"Cleantech", []string{"clean", "energy", "renewable", "green", "sustainability", "solar", "wind", "carbon", "climate", "environmental", "circular economy"}},
	{"Mobility", []string{"mobility", "transport", "automotive", "ev", "electric", "logistics", "autonomous", "micromobility", "shared mobility", "delivery"}},
	{"Edtech", []string{"education", "learning", "edtech", "training", "e-learning", "mooc", "skill development", "certification"}},
	{"Foodtech", []string{"food", "agriculture", "agtech", "farming", "foodservice", "alternative protein", "precision agriculture", "vertical farming"}},
	{"Proptech", []string{"real estate", "property", "construction", "housing", "proptech", "smart buildings", "facility management"}},
	{"AI/ML", []string{"ai", "artificial intelligence", "machine learning", "ml", "data", "computer vision", "nlp", "robotics", "automation"}},
	{"Gaming", []string{"gaming", "games", "esports", "metaverse", "virtual reality", "augmented reality", "entertainment"}},
	{"Fashion", []string{"fashion", "apparel", "clothing", "textile", "luxury", "wearables", "sustainable fashion"}},
	{"Cybersecurity", []string{"cybersecurity", "security", "cyber", "privacy", "encryption", "identity", "compliance"}},
	{"Logistics", []string{"logistics", "supply chain", "fulfillment", "warehousing", "shipping", "delivery", "3pl"}},
	{"Manufacturing", []string{"manufacturing", "industry 4.0", "iot", "industrial", "automation", "robotics", "3d printing"}},
	{"Media", []string{"media", "content", "streaming", "digital media", "creator economy", "advertising", "marketing"}},
	{"Web3", []string{"web3", "blockchain", "nft", "dao", "defi", "crypto", "metaverse", "decentralized"}},
	{"SaaS", []string{"saas", "software", "b2b", "enterprise", "platform", "productivity", "workflow"}},
	{"Social", []string{"social", "networking", "community", "cultural", "dating", "communication"}},
	{"Travel", []string{"travel", "tourism", "hospitality", "booking", "accommodation", "transportation"}},
	{"Space", []string{"space", "aerospace", "satellite", "launch", "space technology", "earth observation"}},
	{"Biotech", []string{"biotech", "biotechnology", "life sciences", "genomics", "synthetic biology", "drug discovery"}},
}

// ClassifySector maps a raw market/sector string to a canonical label.
// Unmatched strings come back title-cased verbatim; empty input maps to
// DefaultSector. Total and deterministic for all inputs.
func ClassifySector(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultSector
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range sectorRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}

	return TitleCase(trimmed)
}

// CanonicalSectors returns the ordered list of canonical sector labels.
func CanonicalSectors() []string {
	labels := make([]string, len(sectorRules))
	for i, rule := range sectorRules {
		labels[i] = rule.label
	}
	return labels
}
