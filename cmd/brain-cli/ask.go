package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/wepopagani/Brain/internal/knowledge"
	"github.com/wepopagani/Brain/internal/llm"
)

// newAskCmd creates the ask subcommand.
func newAskCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "ask <query>",
		Short: "Ask the model for a sector analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			provider := buildProviderChain()
			ui := NewUI(outputJSON)

			var spin *spinner.Spinner
			if !outputJSON {
				spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
				spin.Suffix = " querying model..."
				spin.Start()
			}

			response, err := provider.Query(cmd.Context(), llm.SectorPrompt(query))
			if spin != nil {
				spin.Stop()
			}
			if err != nil {
				ui.Error("Model query failed: %v", err)
				return err
			}

			if raw {
				fmt.Println(response)
				return nil
			}

			graph := knowledge.NewExtractor().Extract(response, query)
			if outputJSON {
				return ui.JSON(map[string]interface{}{
					"query":           query,
					"knowledge_graph": graph,
					"raw_response":    response,
				})
			}

			ui.Success("Analysis complete (%d concepts, %d insights)", len(graph.Nodes), len(graph.Insights))
			ui.Heading("\nSummary")
			fmt.Println(graph.Summary)

			ui.Heading("\nKey concepts")
			for _, node := range graph.Nodes {
				fmt.Printf("  [%s] %s\n", node.Type, node.Label)
			}

			if len(graph.Insights) > 0 {
				ui.Heading("\nInsights")
				for _, insight := range graph.Insights {
					fmt.Printf("  • %s\n", insight)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw model response")
	return cmd
}

// buildProviderChain assembles the primary and fallback providers from
// configuration.
func buildProviderChain() llm.Provider {
	var providers []llm.Provider

	if cfg.LLM.OpenAI.APIKey != "" {
		if primary, err := llm.NewOpenAI(llm.OpenAIConfig{
			APIKey:    cfg.LLM.OpenAI.APIKey,
			BaseURL:   cfg.LLM.OpenAI.BaseURL,
			Model:     cfg.LLM.OpenAI.Model,
			MaxTokens: cfg.LLM.OpenAI.MaxTokens,
			Timeout:   cfg.LLM.OpenAI.Timeout,
		}); err == nil {
			providers = append(providers, primary)
		}
	}

	providers = append(providers, llm.NewOllama(llm.OllamaConfig{
		BaseURL: cfg.LLM.Ollama.BaseURL,
		Model:   cfg.LLM.Ollama.Model,
		Timeout: cfg.LLM.Ollama.Timeout,
	}))

	return llm.NewChain(logger, providers...)
}
