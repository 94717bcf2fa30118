// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-news-kiosk/models"
)

// KeyValueStore is the persistence substrate of the kiosk: a flat mapping
// from string keys to string values. Values written with Set are returned
// verbatim by Get until they are overwritten or removed.
type KeyValueStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// AccountRepository is the collection of registered accounts kept under the
// [KeyAccounts] key. Every method reads the whole collection and, when it
// mutates it, writes the whole collection back.
type AccountRepository interface {
	// FindByUsername returns the account whose username matches exactly.
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	// FindByEmail returns the account whose email matches exactly.
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	// Insert appends account to the collection. Uniqueness is the caller's job.
	Insert(ctx context.Context, account models.Account) error
	// Update replaces the record whose email equals account.Email.
	Update(ctx context.Context, account models.Account) error
	// List returns every stored account.
	List(ctx context.Context) ([]models.Account, error)
}

// SessionManager owns the single "logged-in account" slot.
type SessionManager interface {
	// SetSession stores account as the current session and writes the same
	// record through to the account repository.
	SetSession(ctx context.Context, account models.Account) error
	// GetSession returns the current account or [ErrSessionNotFound].
	GetSession(ctx context.Context) (models.Account, error)
	// ClearSession empties the slot. The account collection is untouched.
	ClearSession(ctx context.Context) error
}

// SelectedArticleStore remembers the article the user opened last.
type SelectedArticleStore interface {
	Set(ctx context.Context, article models.Article) error
	Get(ctx context.Context) (models.Article, error)
	Clear(ctx context.Context) error
}
