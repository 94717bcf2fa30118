// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-news-kiosk/models"
)

// CommerceService runs the account workflows of the storefront: register,
// login, purchase and the lucky-draw ticket grant. Every mutating workflow
// computes the new account fully in memory and persists it with a single
// session write, so a failure never leaves a half-applied change.
type CommerceService interface {
	// Register validates req, rejects a taken username (checked first) or
	// email, hashes the password and appends the new account. The account
	// is not logged in afterwards.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login verifies the credentials, backfills absent wallet fields with
	// their defaults and opens the session.
	Login(ctx context.Context, email, password string) (models.Account, error)

	// Logout closes the session. Accounts are untouched.
	Logout(ctx context.Context) error

	// CurrentAccount returns the logged-in account or ErrNotLoggedIn.
	CurrentAccount(ctx context.Context) (models.Account, error)

	// Purchase debits price from the session account and adds article to
	// its owned list.
	Purchase(ctx context.Context, article models.Article, price int64) (models.Account, error)

	// GrantTicketIfEligible converts 50000 of spend into 3 lucky-draw
	// tickets when more than 50000 has been spent. The bool reports whether
	// the grant happened.
	GrantTicketIfEligible(ctx context.Context, account models.Account) (models.Account, bool, error)

	// PurchaseWithReward prices article for the session account at now,
	// purchases it and then applies the ticket grant.
	PurchaseWithReward(ctx context.Context, article models.Article, now time.Time) (models.Account, bool, error)

	// OwnedArticles lists the articles bought by the session account.
	OwnedArticles(ctx context.Context) ([]models.Article, error)
}

// RewardService redeems lucky-draw tickets.
type RewardService interface {
	// RedeemTicket spends one ticket of the session account, draws a reward,
	// applies it and returns the updated account with the reward label.
	RedeemTicket(ctx context.Context) (models.Account, string, error)
}

// CatalogService serves the article feed to the presentation layer.
type CatalogService interface {
	// Browse returns one page of the category's articles whose title
	// contains the search term.
	Browse(ctx context.Context, query models.BrowseQuery) (models.Page[models.Article], error)

	// Refresh refetches category and replaces its cached articles.
	Refresh(ctx context.Context, category models.Category) error

	// SelectArticle remembers article as the one opened for detail.
	SelectArticle(ctx context.Context, article models.Article) error

	// SelectedArticle returns the article opened last.
	SelectedArticle(ctx context.Context) (models.Article, error)
}

// FeedRefreshJob keeps the catalog cache warm in the background.
type FeedRefreshJob interface {
	// Start launches the refresh goroutine, refreshing every category each
	// interval. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()

	// Run starts the job with its configured interval.
	Run()
}
