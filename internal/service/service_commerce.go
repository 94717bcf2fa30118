// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/internal/crypto"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/internal/validators"
	"github.com/MKhiriev/go-news-kiosk/models"
)

const (
	// TicketThreshold is the spend that has to be exceeded before tickets
	// are granted. The same amount is debited from the spend counter.
	TicketThreshold int64 = 50000
	// TicketGrant is the number of tickets set by one grant.
	TicketGrant int64 = 3
)

type commerceService struct {
	accounts        store.AccountRepository
	session         store.SessionManager
	hasher          crypto.PasswordHasher
	validator       validators.Validator
	startingBalance int64
	logger          *logger.Logger
}

// NewCommerceService builds a CommerceService over the account collection
// and the session slot. startingBalance is the wallet grant backfilled at
// login for accounts that have no balance yet.
func NewCommerceService(
	accounts store.AccountRepository,
	session store.SessionManager,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	startingBalance int64,
	logger *logger.Logger,
) CommerceService {
	return &commerceService{
		accounts:        accounts,
		session:         session,
		hasher:          hasher,
		validator:       validator,
		startingBalance: startingBalance,
		logger:          logger,
	}
}

func (s *commerceService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("registration form rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.accounts.FindByUsername(ctx, req.Username); err == nil {
		return models.Account{}, ErrDuplicateUsername
	} else if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("username", req.Username).Msg("error looking up username")
		return models.Account{}, fmt.Errorf("error looking up username: %w", err)
	}

	if _, err := s.accounts.FindByEmail(ctx, req.Email); err == nil {
		return models.Account{}, ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("email", req.Email).Msg("error looking up email")
		return models.Account{}, fmt.Errorf("error looking up email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.Account{}, fmt.Errorf("error hashing password: %w", err)
	}

	account := models.Account{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
	}
	if err = s.accounts.Insert(ctx, account); err != nil {
		log.Err(err).Str("email", req.Email).Msg("error saving account")
		return models.Account{}, fmt.Errorf("error saving account: %w", err)
	}

	log.Info().Str("username", req.Username).Msg("account registered")
	return account, nil
}

func (s *commerceService) Login(ctx context.Context, email, password string) (models.Account, error) {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	req := models.LoginRequest{Email: email, Password: password}
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("login form rejected")
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("email", email).Msg("error looking up account")
		return models.Account{}, fmt.Errorf("error looking up account: %w", err)
	}

	if !s.hasher.Verify(password, account.Password) {
		log.Debug().Str("email", email).Msg("password mismatch")
		return models.Account{}, ErrInvalidCredentials
	}

	account = s.backfill(account)
	if err = s.session.SetSession(ctx, account); err != nil {
		log.Err(err).Str("email", email).Msg("error opening session")
		return models.Account{}, fmt.Errorf("error opening session: %w", mapStoreError(err))
	}

	log.Info().Str("email", email).Msg("logged in")
	return account, nil
}

// backfill sets every absent wallet field to its default.
func (s *commerceService) backfill(account models.Account) models.Account {
	out := account.Clone()
	if out.Balance == nil {
		out.SetBalance(s.startingBalance)
	}
	if out.FreeArticles == nil {
		out.SetFreeArticles(0)
	}
	if out.GotJackpot == nil {
		out.SetGotJackpot(false)
	}
	if out.LuckyDraw == nil {
		out.SetLuckyDraw(0)
	}
	if out.Owned == nil {
		out.Owned = []models.Article{}
	}
	if out.TotalSpent == nil {
		out.SetTotalSpent(0)
	}
	return out
}

func (s *commerceService) Logout(ctx context.Context) error {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	if err := s.session.ClearSession(ctx); err != nil {
		log.Err(err).Msg("error clearing session")
		return fmt.Errorf("error clearing session: %w", err)
	}

	log.Info().Msg("logged out")
	return nil
}

func (s *commerceService) CurrentAccount(ctx context.Context) (models.Account, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)
	return s.currentAccount(ctx)
}

func (s *commerceService) currentAccount(ctx context.Context) (models.Account, error) {
	account, err := s.session.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Account{}, ErrNotLoggedIn
		}
		logger.FromContext(ctx).Err(err).Msg("error reading session")
		return models.Account{}, fmt.Errorf("error reading session: %w", err)
	}
	return account, nil
}

func (s *commerceService) Purchase(ctx context.Context, article models.Article, price int64) (models.Account, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)
	return s.purchase(ctx, article, price)
}

func (s *commerceService) purchase(ctx context.Context, article models.Article, price int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	if price < 0 {
		return models.Account{}, fmt.Errorf("%w: negative price %d", ErrInvalidDataProvided, price)
	}

	account, err := s.currentAccount(ctx)
	if err != nil {
		return models.Account{}, err
	}

	if account.BalanceValue() < price {
		log.Debug().Int64("balance", account.BalanceValue()).Int64("price", price).Msg("insufficient balance")
		return account, ErrInsufficientBalance
	}
	if account.Owns(article.ID) {
		return account, ErrAlreadyOwned
	}

	updated := account.Clone()
	updated.SetBalance(account.BalanceValue() - price)
	updated.SetTotalSpent(account.TotalSpentValue() + price)
	updated.Owned = append(updated.Owned, article.Clone())

	if err = s.session.SetSession(ctx, updated); err != nil {
		log.Err(err).Int64("article_id", article.ID).Msg("error saving purchase")
		return account, fmt.Errorf("error saving purchase: %w", mapStoreError(err))
	}

	log.Info().Int64("article_id", article.ID).Int64("price", price).Msg("article purchased")
	return updated, nil
}

func (s *commerceService) GrantTicketIfEligible(ctx context.Context, account models.Account) (models.Account, bool, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)
	return s.grantTicketIfEligible(ctx, account)
}

func (s *commerceService) grantTicketIfEligible(ctx context.Context, account models.Account) (models.Account, bool, error) {
	log := logger.FromContext(ctx)

	if account.TotalSpentValue() <= TicketThreshold {
		return account, false, nil
	}

	updated := account.Clone()
	updated.SetTotalSpent(account.TotalSpentValue() - TicketThreshold)
	updated.SetLuckyDraw(TicketGrant)

	if err := s.session.SetSession(ctx, updated); err != nil {
		log.Err(err).Str("email", account.Email).Msg("error saving ticket grant")
		return account, false, fmt.Errorf("error saving ticket grant: %w", mapStoreError(err))
	}

	log.Info().Str("email", account.Email).Int64("tickets", TicketGrant).Msg("lucky draw tickets granted")
	return updated, true, nil
}

func (s *commerceService) PurchaseWithReward(ctx context.Context, article models.Article, now time.Time) (models.Account, bool, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)

	account, err := s.currentAccount(ctx)
	if err != nil {
		return models.Account{}, false, err
	}

	account, err = s.purchase(ctx, article, catalog.PriceFor(article, account, now))
	if err != nil {
		return account, false, err
	}

	return s.grantTicketIfEligible(ctx, account)
}

func (s *commerceService) OwnedArticles(ctx context.Context) ([]models.Article, error) {
	ctx, _ = logger.WithTraceID(ctx, s.logger)

	account, err := s.currentAccount(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]models.Article, len(account.Owned))
	for i, article := range account.Owned {
		owned[i] = article.Clone()
	}
	return owned, nil
}
