package gormrepository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
)

var _ repository.GameStore = (*Store)(nil)

type Store struct {
	db *gorm.DB

	// SkipUnchanged turns a matched upsert whose attributes already equal
	// the stored row into a no-op reported as skipped.
	SkipUnchanged bool
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var upsertColumns = []string{"title", "category", "is_active", "rtp", "updated_at"}

func (s *Store) Upsert(ctx context.Context, key repository.GameKey, attrs repository.GameAttributes) (*models.Game, repository.Outcome, error) {
	var (
		game    models.Game
		outcome repository.Outcome
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("provider = ? AND external_id = ?", key.Provider, key.ExternalID).
			Take(&game).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			game = models.Game{
				Provider:   key.Provider,
				ExternalID: key.ExternalID,
				Title:      attrs.Title,
				Category:   attrs.Category,
				IsActive:   attrs.IsActive,
				RTP:        attrs.RTP,
			}
			outcome = repository.OutcomeCreated
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "provider"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			}).Create(&game).Error
		}
		if err != nil {
			return err
		}

		if s.SkipUnchanged && attrs.Matches(&game) {
			outcome = repository.OutcomeSkipped
			return nil
		}

		game.Title = attrs.Title
		game.Category = attrs.Category
		game.IsActive = attrs.IsActive
		game.RTP = attrs.RTP
		outcome = repository.OutcomeUpdated
		return tx.Model(&game).Select(upsertColumns).Updates(&game).Error
	})
	if err != nil {
		return nil, "", fmt.Errorf("upsert game %s/%s: %w", key.Provider, key.ExternalID, err)
	}
	return &game, outcome, nil
}

func (s *Store) activeQuery(ctx context.Context, params repository.ListGamesParams) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Game{}).Where("is_active = ?", true)
	if params.Provider != "" {
		query = query.Where("provider = ?", params.Provider)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	return query
}

func (s *Store) ListActive(ctx context.Context, params repository.ListGamesParams) ([]models.Game, error) {
	query := applyOrder(s.activeQuery(ctx, params), params.SortField, params.Direction)
	var items []models.Game
	if err := query.Limit(normalizeLimit(params.Limit, 20)).Offset(normalizeOffset(params.Offset)).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CountActive(ctx context.Context, params repository.ListGamesParams) (int64, error) {
	var total int64
	if err := s.activeQuery(ctx, params).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) CreateImportRun(ctx context.Context, run *models.ImportRun) error {
	if run == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(run).Error
}

func (s *Store) ListImportRuns(ctx context.Context, provider string, limit int) ([]models.ImportRun, error) {
	var items []models.ImportRun
	if err := s.db.WithContext(ctx).
		Where("provider = ?", provider).
		Order("created_at desc").
		Order("id desc").
		Limit(normalizeLimit(limit, 20)).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// applyOrder only ever sees allow-listed columns; ties break on id.
func applyOrder(query *gorm.DB, field repository.SortField, dir repository.SortDirection) *gorm.DB {
	column := string(repository.ParseSortField(string(field)))
	desc := dir == repository.SortDesc
	return query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

func normalizeLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
