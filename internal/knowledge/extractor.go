package knowledge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wepopagani/Brain/internal/startup"
)

const (
	maxNodes    = 6
	minConcepts = 4
	maxInsights = 5

	// The first mainNodes concepts become "main" nodes.
	mainNodes = 3

	// Every edge carries the same weight; a placeholder until a real
	// relevance measure exists.
	edgeStrength = 0.7
)

var (
	boldConceptRe = regexp.MustCompile(`\*\*(.*?)\*\*`)
	markerRe      = regexp.MustCompile(`\*+`)
	newlinesRe    = regexp.MustCompile(`\n+`)
	bulletSplitRe = regexp.MustCompile(`\n\s*[\*•-]\s*`)
)

// Default concept sets per query domain, used to top up sparse
// extractions.
var (
	printingConcepts  = []string{"Stampa 3D", "Tecnologia Additiva", "Prototipazione", "Manufacturing", "Materiali Innovativi", "Design Digitale"}
	cleantechConcepts = []string{"Cleantech", "Energia Rinnovabile", "Sostenibilità", "Green Tech", "Venture Capital", "ESG"}
	genericConcepts   = []string{"Startup", "Tecnologia", "Innovazione", "Mercato", "Finanziamenti", "Trend"}
)

// Insight keyword gates: a candidate segment must contain at least one.
var (
	bulletInsightKeywords   = []string{"startup", "tecnologia", "mercato", "finanziamenti", "energia", "innovazione", "sostenibile", "3d", "stampa", "modeling"}
	sentenceInsightKeywords = []string{"startup", "tecnologia", "mercato", "settore", "innovazione"}
)

// Extractor parses unstructured model prose into a Graph. Every stage
// degrades to deterministic defaults, so extraction is total: empty or
// noise input still yields a renderable graph.
type Extractor struct{}

// NewExtractor creates a graph extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract builds the knowledge graph for a model response and the
// original query. Never fails; never returns fewer than one node.
func (e *Extractor) Extract(response, query string) *Graph {
	concepts := e.extractConcepts(response, query)
	nodes := buildNodes(concepts)
	edges := connectNodes(nodes)
	insights := extractInsights(response)
	summary := buildSummary(response, query)

	return &Graph{
		Nodes:       nodes,
		Connections: edges,
		Insights:    insights,
		Summary:     summary,
	}
}

// extractConcepts pulls bold-marked phrases out of the response and
// tops up from the query-domain default set when fewer than minConcepts
// survive. Defaults are appended, never replacing real extractions.
func (e *Extractor) extractConcepts(response, query string) []string {
	var concepts []string
	for _, match := range boldConceptRe.FindAllStringSubmatch(response, -1) {
		clean := strings.TrimSpace(markerRe.ReplaceAllString(match[1], ""))
		if len(clean) > 2 {
			concepts = append(concepts, clean)
		}
	}

	if len(concepts) < minConcepts {
		defaults := domainConcepts(query)
		needed := maxNodes - len(concepts)
		if needed > len(defaults) {
			needed = len(defaults)
		}
		concepts = append(concepts, defaults[:needed]...)
	}

	if len(concepts) > maxNodes {
		concepts = concepts[:maxNodes]
	}
	return concepts
}

// domainConcepts selects the default concept set by keyword match on
// the query.
func domainConcepts(query string) []string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "3d") || strings.Contains(q, "stampa"):
		return printingConcepts
	case strings.Contains(q, "cleantech"):
		return cleantechConcepts
	default:
		return genericConcepts
	}
}

// buildNodes lays the concepts out on a deterministic grid.
func buildNodes(concepts []string) []Node {
	nodes := make([]Node, 0, len(concepts))
	for i, concept := range concepts {
		kind := "secondary"
		if i < mainNodes {
			kind = "main"
		}
		nodes = append(nodes, Node{
			ID:          fmt.Sprintf("node_%d", i),
			Label:       startup.TitleCase(strings.TrimSpace(concept)),
			Type:        kind,
			X:           float64(300 + (i%3)*200),
			Y:           float64(200 + (i/3)*150),
			Description: fmt.Sprintf("Concetto chiave: %s", concept),
			Connections: []string{},
		})
	}
	return nodes
}

// connectNodes links every ordered pair of distinct nodes whose indices
// differ by at most 2, producing a chain-like graph. Proximity in
// extraction order stands in for semantic relation.
func connectNodes(nodes []Node) []Edge {
	var edges []Edge
	for i := range nodes {
		for j := range nodes {
			if i == j || abs(i-j) > 2 {
				continue
			}
			edges = append(edges, Edge{
				Source:   nodes[i].ID,
				Target:   nodes[j].ID,
				Strength: edgeStrength,
			})
			nodes[i].Connections = append(nodes[i].Connections, nodes[j].ID)
		}
	}
	return edges
}

// extractInsights keeps substantial bullet segments, then falls back to
// sentence splitting when fewer than 3 survive.
func extractInsights(response string) []string {
	var insights []string

	for _, section := range bulletSplitRe.Split(response, -1) {
		clean := cleanSegment(section)
		if len(clean) > 40 && len(clean) < 200 && containsAny(clean, bulletInsightKeywords) {
			insights = append(insights, ensurePeriod(clean))
			if len(insights) >= maxInsights {
				break
			}
		}
	}

	if len(insights) < 3 {
		for _, sentence := range strings.Split(response, ".") {
			clean := cleanSegment(sentence)
			if len(clean) > 40 && len(clean) < 150 && containsAny(clean, sentenceInsightKeywords) {
				insights = append(insights, ensurePeriod(clean))
				if len(insights) >= maxInsights {
					break
				}
			}
		}
	}

	return insights
}

// buildSummary joins the substantial opening lines of the response, or
// falls back to a query-embedding template.
func buildSummary(response, query string) string {
	lines := strings.Split(response, "\n")
	if len(lines) > 4 {
		lines = lines[:4]
	}

	var kept []string
	for _, line := range lines {
		clean := strings.TrimSpace(markerRe.ReplaceAllString(line, ""))
		if len(clean) > 30 && !strings.HasPrefix(clean, "#") {
			kept = append(kept, clean)
		}
	}

	if len(kept) == 0 {
		return fmt.Sprintf("Analisi AI del settore richiesto: %s", query)
	}

	summary := strings.Join(kept, " ")
	summary = markerRe.ReplaceAllString(summary, "")
	summary = newlinesRe.ReplaceAllString(summary, " ")
	return strings.TrimSpace(summary)
}

func cleanSegment(s string) string {
	clean := markerRe.ReplaceAllString(s, "")
	clean = newlinesRe.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

func ensurePeriod(s string) string {
	if !strings.HasSuffix(s, ".") {
		return s + "."
	}
	return s
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
