package knowledge

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const richResponse = `Il settore fintech italiano mostra una crescita costante e sostenuta.
**Pagamenti Digitali** e **Open Banking** guidano il mercato.

* La tecnologia blockchain sta trasformando il mercato dei pagamenti digitali
* Le startup italiane attraggono sempre piu capitali esteri nel settore`

func TestExtractor_Extract(t *testing.T) {
	graph := NewExtractor().Extract(richResponse, "fintech in italia")

	// Two bold concepts topped up with defaults to six nodes.
	require.Len(t, graph.Nodes, 6)
	assert.Equal(t, "node_0", graph.Nodes[0].ID)
	assert.Equal(t, "Pagamenti Digitali", graph.Nodes[0].Label)
	assert.Equal(t, "main", graph.Nodes[0].Type)
	assert.Equal(t, "Open Banking", graph.Nodes[1].Label)
	assert.Equal(t, "Startup", graph.Nodes[2].Label)
	assert.Equal(t, "secondary", graph.Nodes[3].Type)

	// Grid layout: three per row.
	assert.Equal(t, 300.0, graph.Nodes[0].X)
	assert.Equal(t, 200.0, graph.Nodes[0].Y)
	assert.Equal(t, 300.0, graph.Nodes[3].X)
	assert.Equal(t, 350.0, graph.Nodes[3].Y)

	require.Len(t, graph.Insights, 3)
	assert.Equal(t, "Pagamenti Digitali e Open Banking guidano il mercato.", graph.Insights[0])
	assert.Equal(t, "La tecnologia blockchain sta trasformando il mercato dei pagamenti digitali.", graph.Insights[1])

	assert.Contains(t, graph.Summary, "crescita costante")
	assert.NotContains(t, graph.Summary, "**")
}

func TestExtractor_Extract_EmptyResponse(t *testing.T) {
	graph := NewExtractor().Extract("", "analisi del settore fintech")

	// Extraction is total: an empty response still yields a full graph
	// from the generic default concepts.
	require.Len(t, graph.Nodes, 6)
	assert.Equal(t, "Startup", graph.Nodes[0].Label)
	assert.Empty(t, graph.Insights)
	assert.Equal(t, "Analisi AI del settore richiesto: analisi del settore fintech", graph.Summary)
}

func TestExtractor_Extract_DomainDefaults(t *testing.T) {
	graph := NewExtractor().Extract("", "startup di stampa 3d in italia")
	assert.Equal(t, "Stampa 3D", graph.Nodes[0].Label)

	graph = NewExtractor().Extract("", "cleantech europee")
	assert.Equal(t, "Cleantech", graph.Nodes[0].Label)
}

func TestExtractor_Extract_EdgeLayout(t *testing.T) {
	response := "**Alpha One** **Beta Two** **Gamma Three** **Delta Four**"
	graph := NewExtractor().Extract(response, "qualsiasi")

	require.Len(t, graph.Nodes, 4)

	// Ordered pairs with index distance at most 2.
	assert.Len(t, graph.Connections, 10)
	for _, edge := range graph.Connections {
		assert.Equal(t, 0.7, edge.Strength)
	}
	assert.Equal(t, []string{"node_1", "node_2"}, graph.Nodes[0].Connections)
	assert.Equal(t, []string{"node_0", "node_1", "node_3"}, graph.Nodes[2].Connections)
}

func TestExtractor_Extract_CapsConcepts(t *testing.T) {
	response := ""
	for i := 0; i < 9; i++ {
		response += fmt.Sprintf("**Concetto Numero %d** ", i)
	}

	graph := NewExtractor().Extract(response, "qualsiasi")
	assert.Len(t, graph.Nodes, 6)
}

func TestExtractor_Extract_SentenceFallbackInsights(t *testing.T) {
	response := "Le startup del settore crescono rapidamente grazie ai nuovi capitali. " +
		"Il mercato europeo della tecnologia attrae investitori internazionali. " +
		"Breve frase."

	graph := NewExtractor().Extract(response, "settore tech")
	require.NotEmpty(t, graph.Insights)
	for _, insight := range graph.Insights {
		assert.True(t, len(insight) > 40)
	}
}
