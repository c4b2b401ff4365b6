// Package knowledge turns free-form model prose into a bounded
// knowledge graph of concepts, relations, insights, and a summary.
package knowledge

// Node is one concept in the extracted graph.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"` // main or secondary
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Description string   `json:"description"`
	Connections []string `json:"connections"`
}

// Edge links two concept nodes.
type Edge struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
}

// Graph is the bounded structure derived from one model response.
// Built fresh per query; never persisted.
type Graph struct {
	Nodes       []Node   `json:"nodes"`
	Connections []Edge   `json:"connections"`
	Insights    []string `json:"insights"`
	Summary     string   `json:"summary"`
}
