// Package main provides the firstcycling command line interface.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/baronet2/FirstCyclingScraper/internal/collector"
	"github.com/baronet2/FirstCyclingScraper/internal/config"
	"github.com/baronet2/FirstCyclingScraper/internal/fetcher"
	"github.com/baronet2/FirstCyclingScraper/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "firstcycling",
		Short:        "Extract normalized race results and rider data from firstcycling.com",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(
		newRiderCommand(&configPath),
		newRaceCommand(&configPath),
		newRankingCommand(&configPath),
	)
	return root
}

func newService(configPath string) (*collector.Service, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	log := logger.New(cfg.App.LogLevel, cfg.App.Environment)
	return collector.New(fetcher.New(cfg.Fetcher, log), log), nil
}

func newRiderCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rider <id>",
		Short: "Collect a rider's profile and per-year results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			riderID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid rider id %q", args[0])
			}
			svc, err := newService(*configPath)
			if err != nil {
				return err
			}
			rider, err := svc.Rider(cmd.Context(), riderID)
			if err != nil {
				return err
			}
			return printJSON(rider)
		},
	}
}

func newRaceCommand(configPath *string) *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "race <id>",
		Short: "Collect one race edition's metadata and results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raceID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid race id %q", args[0])
			}
			svc, err := newService(*configPath)
			if err != nil {
				return err
			}
			race, err := svc.Race(cmd.Context(), raceID, year)
			if err != nil {
				return err
			}
			return printJSON(race)
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "edition year")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func newRankingCommand(configPath *string) *cobra.Command {
	query := fetcher.RankingQuery{
		Type:     fetcher.RankingWorld,
		Category: fetcher.RankingRiders,
		Page:     1,
	}
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Collect one page of a rankings listing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService(*configPath)
			if err != nil {
				return err
			}
			ranking, err := svc.Ranking(cmd.Context(), query)
			if err != nil {
				return err
			}
			return printJSON(ranking)
		},
	}
	cmd.Flags().IntVar(&query.Type, "type", query.Type, "ranking type (1 world ... 99 women)")
	cmd.Flags().IntVar(&query.Category, "category", query.Category, "ranking category (1 riders, 2 teams, 3 nations)")
	cmd.Flags().StringVar(&query.Year, "year", "", "year (\"2021\") or year-week (\"2021-7\")")
	cmd.Flags().StringVar(&query.Country, "country", "", "three-letter country code filter")
	cmd.Flags().BoolVar(&query.U23, "u23", false, "under-23 riders only")
	cmd.Flags().IntVar(&query.Page, "page", query.Page, "result page")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
