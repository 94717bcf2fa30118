// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/models"
)

// accountRepository is the [AccountRepository] stored as one JSON array
// under [KeyAccounts].
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type accountRepository struct {
	kv     KeyValueStore
	strict bool
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over kv. When strict
// is true, Update of an unknown email fails with [ErrAccountNotFound]
// instead of being ignored.
func NewAccountRepository(kv KeyValueStore, strict bool, logger *logger.Logger) AccountRepository {
	logger.Debug().Bool("strict", strict).Msg("creating account repository")
	return &accountRepository{
		kv:     kv,
		strict: strict,
		logger: logger,
	}
}

// FindByUsername returns the account whose Username equals username.
// Matching is exact and case-sensitive.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.find(ctx, func(a models.Account) bool { return a.Username == username })
}

// FindByEmail returns the account whose Email equals email.
// Matching is exact and case-sensitive.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.find(ctx, func(a models.Account) bool { return a.Email == email })
}

func (r *accountRepository) find(ctx context.Context, match func(models.Account) bool) (models.Account, error) {
	accounts, err := r.load(ctx)
	if err != nil {
		return models.Account{}, err
	}

	for _, account := range accounts {
		if match(account) {
			return account, nil
		}
	}

	return models.Account{}, ErrAccountNotFound
}

// Insert appends account to the collection.
func (r *accountRepository) Insert(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}

	accounts = append(accounts, account.Clone())
	if err = setJSON(ctx, r.kv, KeyAccounts, accounts); err != nil {
		log.Err(err).Str("func", "*accountRepository.Insert").Msg("error saving accounts")
		return fmt.Errorf("error saving accounts: %w", err)
	}

	return nil
}

// Update replaces the first record whose Email matches account.Email.
func (r *accountRepository) Update(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	accounts, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range accounts {
		if accounts[i].Email == account.Email {
			accounts[i] = account.Clone()
			replaced = true
			break
		}
	}

	if !replaced {
		if r.strict {
			return ErrAccountNotFound
		}
		log.Warn().Str("func", "*accountRepository.Update").Msg("no stored account matches the session email, update skipped")
		return nil
	}

	if err = setJSON(ctx, r.kv, KeyAccounts, accounts); err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Msg("error saving accounts")
		return fmt.Errorf("error saving accounts: %w", err)
	}

	return nil
}

// List returns the whole collection. An absent collection is empty.
func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	return r.load(ctx)
}

func (r *accountRepository) load(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	accounts, err := getJSON[[]models.Account](ctx, r.kv, KeyAccounts)
	if errors.Is(err, ErrKeyNotFound) {
		return []models.Account{}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.load").Msg("error reading accounts")
		return nil, fmt.Errorf("error reading accounts: %w", err)
	}

	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}
