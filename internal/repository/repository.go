package repository

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"gamecatalog/backend/internal/models"
)

// Outcome classifies what an upsert did to the store.
type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeSkipped Outcome = "skipped"
)

// GameKey is the natural key of a game.
type GameKey struct {
	Provider   string
	ExternalID string
}

// GameAttributes is the full mutable attribute set written on upsert.
type GameAttributes struct {
	Title    string
	Category models.Category
	IsActive bool
	RTP      decimal.NullDecimal
}

// Matches reports whether g already holds exactly these attributes.
func (a GameAttributes) Matches(g *models.Game) bool {
	if g.Title != a.Title || g.Category != a.Category || g.IsActive != a.IsActive {
		return false
	}
	if g.RTP.Valid != a.RTP.Valid {
		return false
	}
	return !a.RTP.Valid || g.RTP.Decimal.Equal(a.RTP.Decimal)
}

// SortField is a column the listing may be ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByTitle     SortField = "title"
)

// ParseSortField maps a requested field onto the allow-list. Matching is
// exact; anything else, including "TITLE", falls back to created_at.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByTitle:
		return SortByTitle
	default:
		return SortByCreatedAt
	}
}

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection defaults to ascending for anything but "desc" (any case).
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(s, string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

type ListGamesParams struct {
	Provider  string
	Category  string
	SortField SortField
	Direction SortDirection
	Limit     int
	Offset    int
}

// GameStore is the persistence contract the catalog services depend on.
type GameStore interface {
	Upsert(ctx context.Context, key GameKey, attrs GameAttributes) (*models.Game, Outcome, error)
	ListActive(ctx context.Context, params ListGamesParams) ([]models.Game, error)
	CountActive(ctx context.Context, params ListGamesParams) (int64, error)
	CreateImportRun(ctx context.Context, run *models.ImportRun) error
	ListImportRuns(ctx context.Context, provider string, limit int) ([]models.ImportRun, error)
}
