// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport to the external most-popular
// article feed.
//
// The primary abstraction is [ArticleFeed], which decouples the catalog
// service from the HTTP API. The package ships a resty implementation
// ([NewHTTPArticleFeed]) that throttles itself with a token bucket so the
// provider's request quota is never exceeded.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401/403, [ErrRateLimited] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-news-kiosk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/article_feed_mock.go -package=mock

// ArticleFeed fetches article listings. It is read-only and stateless from
// the caller's point of view.
type ArticleFeed interface {
	// FetchArticles returns the most-popular articles of category over the
	// configured period. Returns [ErrInvalidCategory] for an unknown category
	// and a transport or status error when the request fails.
	FetchArticles(ctx context.Context, category models.Category) ([]models.Article, error)
}
