package service

import (
	"context"
	"fmt"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/repository"
)

type FeedService interface {
	Browse(ctx context.Context, filters dto.SearchFilters) (*dto.FeedResponse, error)
}

type feedService struct {
	levelRepo repository.LevelRepository
}

func NewFeedService(levelRepo repository.LevelRepository) FeedService {
	return &feedService{levelRepo: levelRepo}
}

// Browse validates the filter set and runs the feed search. Invalid filters
// fail with ErrInvalidFilter before any query is issued.
func (s *feedService) Browse(ctx context.Context, filters dto.SearchFilters) (*dto.FeedResponse, error) {
	filters.Normalize()
	if err := filters.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	items, total, err := s.levelRepo.Feed(ctx, filters)
	if err != nil {
		return nil, err
	}

	return dto.NewFeedResponse(items, int(total), filters.Page, filters.PageSize), nil
}
