package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wepopagani/Brain/internal/startup"
)

// loadStore builds and loads the startup table for CLI commands.
func loadStore(cmd *cobra.Command) (*startup.Store, error) {
	store := startup.NewStore(cfg.Data.CSVPath, logger)
	if err := store.Load(cmd.Context()); err != nil {
		if errors.Is(err, startup.ErrNoData) {
			return nil, fmt.Errorf("no startup data at %s", cfg.Data.CSVPath)
		}
		return nil, fmt.Errorf("load startup data: %w", err)
	}
	return store, nil
}

// newColumnsCmd creates the columns subcommand.
func newColumnsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Show the CSV column categorization",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			snap := store.Current()
			class := snap.Classification
			ui := NewUI(outputJSON)

			if outputJSON {
				categories := make(map[string][]string)
				for _, cat := range startup.Categories() {
					if headers := class.Headers(cat); len(headers) > 0 {
						categories[string(cat)] = headers
					}
				}
				return ui.JSON(map[string]interface{}{
					"total_columns": len(snap.Raw.Headers),
					"total_rows":    len(snap.Raw.Rows),
					"categories":    categories,
				})
			}

			samples := class.SampleHeaders(5)
			ui.Heading("Columns: %d  Rows: %d", len(snap.Raw.Headers), len(snap.Raw.Rows))
			for _, cat := range startup.Categories() {
				headers := class.Headers(cat)
				if len(headers) == 0 {
					continue
				}
				fmt.Printf("  %-14s %d\n", cat, len(headers))
				fmt.Printf("    %s\n", strings.Join(samples[cat], ", "))
			}
			return nil
		},
	}
}

// newStartupsCmd creates the startups subcommand.
func newStartupsCmd() *cobra.Command {
	var (
		limit  int
		sector string
	)

	cmd := &cobra.Command{
		Use:   "startups",
		Short: "List normalized startup records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			records := store.Records()
			if sector != "" {
				records = startup.BySector(records, sector)
			}
			total := len(records)
			if len(records) > limit {
				records = records[:limit]
			}

			ui := NewUI(outputJSON)
			if outputJSON {
				return ui.JSON(map[string]interface{}{
					"count":    len(records),
					"total":    total,
					"startups": records,
				})
			}

			ui.Heading("Startups (%d of %d)", len(records), total)
			for _, rec := range records {
				fmt.Printf("  %-30s %-18s %-10s %s\n", rec.Name, rec.Sector, rec.FundingFormatted, rec.Location)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum records to show")
	cmd.Flags().StringVar(&sector, "sector", "", "filter by sector")
	return cmd
}

// newAnalyticsCmd creates the analytics subcommand.
func newAnalyticsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Compute sector or funding analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			records := store.Records()
			ui := NewUI(outputJSON)

			switch kind {
			case "sectors":
				stats := startup.SectorAnalytics(records)
				if outputJSON {
					return ui.JSON(stats)
				}
				ui.Heading("Sector analytics (%d sectors)", len(stats))
				for _, sc := range startup.SectorCounts(records) {
					s := stats[sc.Name]
					fmt.Printf("  %-20s count=%-4d total=%s avg=%s\n",
						sc.Name, s.Count, startup.FormatFunding(s.TotalFunding), startup.FormatFunding(s.AvgFunding))
				}
			case "funding":
				stats := startup.FundingAnalytics(records)
				if outputJSON {
					return ui.JSON(stats)
				}
				ui.Heading("Total funding: %s  Average: %s  Median: %s",
					startup.FormatFunding(stats.TotalFunding),
					startup.FormatFunding(stats.AverageFunding),
					startup.FormatFunding(stats.MedianFunding))
				for i, top := range stats.TopFunded {
					fmt.Printf("  %2d. %-30s %-12s %s\n", i+1, top.Name, startup.FormatFunding(top.Funding), top.Sector)
				}
			default:
				return fmt.Errorf("unknown analytics kind: %s (use sectors or funding)", kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "sectors", "analytics kind: sectors or funding")
	return cmd
}

// newSearchCmd creates the search subcommand.
func newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search startups by name, sector, description, or founders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			matched := startup.Search(store.Records(), args[0], limit)

			ui := NewUI(outputJSON)
			if outputJSON {
				return ui.JSON(map[string]interface{}{
					"query":    args[0],
					"count":    len(matched),
					"startups": matched,
				})
			}

			if len(matched) == 0 {
				ui.Warning("No startups matched %q", args[0])
				return nil
			}
			ui.Heading("Matches for %q (%d)", args[0], len(matched))
			for _, rec := range matched {
				fmt.Printf("  %-30s %-18s %s\n", rec.Name, rec.Sector, rec.FundingFormatted)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum results")
	return cmd
}
