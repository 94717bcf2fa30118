// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-news-kiosk/internal/adapter"
	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/internal/config"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/models"
)

type catalogService struct {
	feed     adapter.ArticleFeed
	selected store.SelectedArticleStore
	policy   config.FeedErrorPolicy

	mu    sync.RWMutex
	cache map[models.Category][]models.Article

	logger *logger.Logger
}

// NewCatalogService builds a CatalogService that caches the feed per
// category. policy decides how Browse reports a failed fetch; an empty
// policy means config.FeedErrorSwallow.
func NewCatalogService(
	feed adapter.ArticleFeed,
	selected store.SelectedArticleStore,
	policy config.FeedErrorPolicy,
	logger *logger.Logger,
) CatalogService {
	if policy == "" {
		policy = config.FeedErrorSwallow
	}
	return &catalogService{
		feed:     feed,
		selected: selected,
		policy:   policy,
		cache:    make(map[models.Category][]models.Article),
		logger:   logger,
	}
}

func (s *catalogService) Browse(ctx context.Context, query models.BrowseQuery) (models.Page[models.Article], error) {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	category := query.Category
	if category == "" {
		category = models.CategoryEmailed
	}
	if !category.Valid() {
		return models.Page[models.Article]{}, fmt.Errorf("%w: unknown category %q", ErrInvalidDataProvided, category)
	}

	articles, ok := s.cached(category)
	if !ok {
		fetched, err := s.refresh(ctx, category)
		if err != nil {
			if s.policy == config.FeedErrorSurface {
				return models.Page[models.Article]{}, err
			}
			log.Warn().Err(err).Str("category", string(category)).Msg("feed unavailable, showing empty list")
			fetched = nil
		}
		articles = fetched
	}

	filtered := catalog.FilterByTitle(articles, query.Search)
	return catalog.Paginate(filtered, query.Page, catalog.DefaultPageSize), nil
}

func (s *catalogService) Refresh(ctx context.Context, category models.Category) error {
	ctx, _ = logger.WithTraceID(ctx, s.logger)

	_, err := s.refresh(ctx, category)
	return err
}

func (s *catalogService) refresh(ctx context.Context, category models.Category) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	articles, err := s.feed.FetchArticles(ctx, category)
	if err != nil {
		log.Err(err).Str("category", string(category)).Msg("error fetching articles")
		return nil, fmt.Errorf("%w: %w", ErrFeedUnavailable, err)
	}

	s.mu.Lock()
	s.cache[category] = articles
	s.mu.Unlock()

	log.Debug().Str("category", string(category)).Int("count", len(articles)).Msg("feed cache refreshed")
	return articles, nil
}

func (s *catalogService) cached(category models.Category) ([]models.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles, ok := s.cache[category]
	return articles, ok
}

func (s *catalogService) SelectArticle(ctx context.Context, article models.Article) error {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	if err := s.selected.Set(ctx, article); err != nil {
		log.Err(err).Int64("article_id", article.ID).Msg("error selecting article")
		return fmt.Errorf("error selecting article: %w", err)
	}
	return nil
}

func (s *catalogService) SelectedArticle(ctx context.Context) (models.Article, error) {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	article, err := s.selected.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoArticleSelected) {
			return models.Article{}, err
		}
		log.Err(err).Msg("error reading selected article")
		return models.Article{}, fmt.Errorf("error reading selected article: %w", err)
	}
	return article, nil
}
