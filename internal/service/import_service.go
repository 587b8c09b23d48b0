package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gamecatalog/backend/internal/hub"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
	"gamecatalog/backend/internal/validation"
)

// EventImportCompleted is broadcast on the hub after every batch.
const EventImportCompleted = "import.completed"

// ImportStats is the aggregate outcome of one provider batch.
type ImportStats struct {
	Provider string               `json:"provider"`
	Received int                  `json:"received"`
	Created  int                  `json:"created"`
	Updated  int                  `json:"updated"`
	Skipped  int                  `json:"skipped"`
	Errors   []models.ImportError `json:"errors"`
}

// RecordResult is what happened to a single record of a batch.
// Exactly one of Outcome or Err is set.
type RecordResult struct {
	Index   int
	Outcome repository.Outcome
	Game    *models.Game
	Err     error
}

type ImportService struct {
	Store  repository.GameStore
	Hub    *hub.Hub
	Logger *zap.Logger
}

// Import validates and upserts every record in order. It never fails as a
// whole: per-record problems are reported in ImportStats.Errors.
func (s *ImportService) Import(ctx context.Context, provider string, records []any) ImportStats {
	results := s.Process(ctx, provider, records)
	stats := Summarize(provider, results)

	s.logger().Info("provider import finished",
		zap.String("provider", provider),
		zap.Int("received", stats.Received),
		zap.Int("created", stats.Created),
		zap.Int("updated", stats.Updated),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", len(stats.Errors)),
	)

	s.recordRun(ctx, stats)
	if s.Hub != nil {
		n := s.Hub.Broadcast(provider, hub.Event{Type: EventImportCompleted, Payload: stats})
		s.logger().Debug("import event broadcast", zap.String("provider", provider), zap.Int("delivered", n))
	}
	return stats
}

// Process runs the validate-then-upsert loop and returns one result per record.
func (s *ImportService) Process(ctx context.Context, provider string, records []any) []RecordResult {
	results := make([]RecordResult, 0, len(records))
	for i, raw := range records {
		res := s.processOne(ctx, provider, raw)
		res.Index = i
		if res.Err != nil {
			s.logger().Warn("import record rejected",
				zap.String("provider", provider),
				zap.Int("index", i),
				zap.Error(res.Err),
			)
		}
		results = append(results, res)
	}
	return results
}

func (s *ImportService) processOne(ctx context.Context, provider string, raw any) (res RecordResult) {
	defer func() {
		if r := recover(); r != nil {
			res = RecordResult{Err: fmt.Errorf("unexpected failure: %v", r)}
		}
	}()

	rec, err := validation.Validate(raw, provider)
	if err != nil {
		return RecordResult{Err: err}
	}

	game, outcome, err := s.Store.Upsert(ctx,
		repository.GameKey{Provider: rec.Provider, ExternalID: rec.ExternalID},
		repository.GameAttributes{
			Title:    rec.Title,
			Category: rec.Category,
			IsActive: rec.IsActive,
			RTP:      rec.RTP,
		},
	)
	if err != nil {
		return RecordResult{Err: err}
	}
	return RecordResult{Outcome: outcome, Game: game}
}

// Summarize folds per-record results into batch statistics.
func Summarize(provider string, results []RecordResult) ImportStats {
	stats := ImportStats{
		Provider: provider,
		Received: len(results),
		Errors:   []models.ImportError{},
	}
	for _, r := range results {
		if r.Err != nil {
			stats.Errors = append(stats.Errors, models.ImportError{Index: r.Index, Message: r.Err.Error()})
			continue
		}
		switch r.Outcome {
		case repository.OutcomeCreated:
			stats.Created++
		case repository.OutcomeUpdated:
			stats.Updated++
		case repository.OutcomeSkipped:
			stats.Skipped++
		}
	}
	return stats
}

func (s *ImportService) recordRun(ctx context.Context, stats ImportStats) {
	run := &models.ImportRun{
		Provider: stats.Provider,
		Received: stats.Received,
		Created:  stats.Created,
		Updated:  stats.Updated,
		Skipped:  stats.Skipped,
		Errors:   stats.Errors,
	}
	if err := s.Store.CreateImportRun(ctx, run); err != nil {
		s.logger().Warn("failed to record import run", zap.String("provider", stats.Provider), zap.Error(err))
	}
}

// RecentRuns returns the latest import runs for a provider, newest first.
func (s *ImportService) RecentRuns(ctx context.Context, provider string, limit int) ([]models.ImportRun, error) {
	return s.Store.ListImportRuns(ctx, provider, limit)
}

func (s *ImportService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
