package service

import (
	"context"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/repository"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type ListGamesParams struct {
	Provider  string
	Category  string
	Sort      string
	Direction string
	Page      int
	PerPage   int
}

// GamePage is one page of active games plus the numbers needed for paging.
type GamePage struct {
	Items       []models.Game
	Total       int64
	CurrentPage int
	PerPage     int
	LastPage    int
}

type CatalogService struct {
	Store          repository.GameStore
	DefaultPerPage int
	MaxPerPage     int
}

// ListGames returns one page of active games. Unknown sort fields fall back
// to created_at and unknown directions to asc.
func (s *CatalogService) ListGames(ctx context.Context, params ListGamesParams) (*GamePage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	perPage := s.perPage(params.PerPage)

	query := repository.ListGamesParams{
		Provider:  params.Provider,
		Category:  params.Category,
		SortField: repository.ParseSortField(params.Sort),
		Direction: repository.ParseSortDirection(params.Direction),
		Limit:     perPage,
		Offset:    (page - 1) * perPage,
	}

	total, err := s.Store.CountActive(ctx, query)
	if err != nil {
		return nil, err
	}
	items, err := s.Store.ListActive(ctx, query)
	if err != nil {
		return nil, err
	}

	return &GamePage{
		Items:       items,
		Total:       total,
		CurrentPage: page,
		PerPage:     perPage,
		LastPage:    LastPage(total, perPage),
	}, nil
}

func (s *CatalogService) perPage(requested int) int {
	def := s.DefaultPerPage
	if def <= 0 {
		def = DefaultPerPage
	}
	ceiling := s.MaxPerPage
	if ceiling <= 0 {
		ceiling = MaxPerPage
	}
	if requested < 1 {
		requested = def
	}
	if requested > ceiling {
		requested = ceiling
	}
	return requested
}

// LastPage is the number of the final page; an empty result still has page 1.
func LastPage(total int64, perPage int) int {
	if perPage <= 0 {
		perPage = 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		return 1
	}
	return last
}
