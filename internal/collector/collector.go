// Package collector composes the fetcher and parsers into aggregate rider,
// race and ranking values.
package collector

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/baronet2/FirstCyclingScraper/internal/fetcher"
	"github.com/baronet2/FirstCyclingScraper/internal/models"
	"github.com/baronet2/FirstCyclingScraper/internal/parser"
)

// Service orchestrates page fetching and extraction.
type Service struct {
	fetcher *fetcher.Client
	log     *logrus.Logger
}

// New creates a collector service.
func New(f *fetcher.Client, log *logrus.Logger) *Service {
	return &Service{fetcher: f, log: log}
}

// Rider collects a rider's profile and their results for every active year.
func (s *Service) Rider(ctx context.Context, riderID int) (*models.Rider, error) {
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "rider_id": riderID})

	doc, err := s.fetcher.RiderPage(ctx, riderID, 0)
	if err != nil {
		return nil, err
	}
	details, err := parser.ParseRiderDetails(doc, riderID)
	if err != nil {
		return nil, fmt.Errorf("rider %d: %w", riderID, err)
	}

	rider := &models.Rider{
		ID:      riderID,
		Details: details,
		Results: make(map[int][]models.ResultRecord, len(details.YearsActive)),
	}
	for _, year := range details.YearsActive {
		yearDoc, err := s.fetcher.RiderPage(ctx, riderID, year)
		if err != nil {
			return nil, err
		}
		records, err := parser.ParseResults(yearDoc)
		if err != nil {
			return nil, fmt.Errorf("rider %d year %d: %w", riderID, year, err)
		}
		rider.Results[year] = records
		log.WithFields(logrus.Fields{"year": year, "results": len(records)}).Debug("collected rider year")
	}

	log.WithField("years", len(rider.Results)).Info("collected rider")
	return rider, nil
}

// Race collects one race edition's metadata and result records.
func (s *Service) Race(ctx context.Context, raceID, year int) (*models.Race, error) {
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "race_id": raceID, "year": year})

	doc, err := s.fetcher.RacePage(ctx, raceID, year)
	if err != nil {
		return nil, err
	}
	metadata, err := parser.ParseRaceMetadata(doc, year)
	if err != nil {
		return nil, fmt.Errorf("race %d (%d): %w", raceID, year, err)
	}
	results, err := parser.ParseResults(doc)
	if err != nil {
		return nil, fmt.Errorf("race %d (%d): %w", raceID, year, err)
	}

	log.WithField("results", len(results)).Info("collected race")
	return &models.Race{
		ID:       raceID,
		Year:     year,
		Metadata: metadata,
		Results:  results,
	}, nil
}

// Ranking collects one page of a rankings listing. A page past the end of
// the listing yields an empty ranking, not an error.
func (s *Service) Ranking(ctx context.Context, query fetcher.RankingQuery) (*models.Ranking, error) {
	log := s.log.WithFields(logrus.Fields{"run_id": uuid.NewString(), "year": query.Year, "page": query.Page})

	doc, pageURL, err := s.fetcher.RankingPage(ctx, query)
	if err != nil {
		return nil, err
	}
	entries := parser.ParseRanking(doc)

	log.WithField("entries", len(entries)).Info("collected ranking page")
	return &models.Ranking{URL: pageURL, Entries: entries}, nil
}
