package startup

// Default values applied when a canonical field has no resolvable
// source column or the cell is empty.
const (
	DefaultLocation    = "Europe"
	DefaultDescription = "Startup innovativa"
	DefaultEmployees   = 10
	DefaultStatus      = "Active"
	DefaultPipeline    = "Unknown"
	DefaultFounders    = "Unknown"
)

// maxFounders caps the comma-joined founders list.
const maxFounders = 3

// descriptionShortLen is where DescriptionShort truncates.
const descriptionShortLen = 200

// Record is the canonical normalized startup row served by the listing
// and analytics endpoints.
type Record struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Sector           string            `json:"sector"`
	Funding          float64           `json:"funding"`
	Location         string            `json:"location"`
	Description      string            `json:"description"`
	Year             int               `json:"year"`
	Employees        int               `json:"employees"`
	Status           string            `json:"status"`
	Pipeline         string            `json:"pipeline"`
	Founders         string            `json:"founders"`
	SocialLinks      map[string]string `json:"social_links"`
	FundingFormatted string            `json:"funding_formatted"`
	DescriptionShort string            `json:"description_short"`
	HasWebsite       bool              `json:"has_website"`
	HasLinkedin      bool              `json:"has_linkedin"`
}

// shortDescription truncates to descriptionShortLen with an ellipsis.
func shortDescription(desc string) string {
	if len(desc) > descriptionShortLen {
		return desc[:descriptionShortLen] + "..."
	}
	return desc
}
