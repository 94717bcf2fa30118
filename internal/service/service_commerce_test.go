// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/internal/config"
	"github.com/MKhiriev/go-news-kiosk/internal/crypto"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/mock"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/internal/validators"
	"github.com/MKhiriev/go-news-kiosk/models"
)

const testStartingBalance int64 = 100000

func newTestCommerceSvc(t *testing.T, ctrl *gomock.Controller) (
	CommerceService,
	*mock.MockAccountRepository,
	*mock.MockSessionManager,
	*mock.MockPasswordHasher,
) {
	t.Helper()
	accounts := mock.NewMockAccountRepository(ctrl)
	session := mock.NewMockSessionManager(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewCommerceService(accounts, session, hasher, validators.NewAccountValidator(), testStartingBalance, logger.Nop())
	return svc, accounts, session, hasher
}

func sessionAccount(balance, totalSpent int64, owned ...models.Article) models.Account {
	account := models.Account{Username: "alice", Email: "a@x.com", Password: "hash", Owned: owned}
	account.SetBalance(balance)
	account.SetTotalSpent(totalSpent)
	account.SetFreeArticles(0)
	account.SetLuckyDraw(0)
	account.SetGotJackpot(false)
	return account
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestCommerceService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, hasher := newTestCommerceSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"}

	gomock.InOrder(
		accounts.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.Account{}, store.ErrAccountNotFound),
		accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(models.Account{}, store.ErrAccountNotFound),
		hasher.EXPECT().Hash("secret1").Return("$2a$hash", nil),
		accounts.EXPECT().Insert(gomock.Any(), models.Account{Username: "alice", Email: "a@x.com", Password: "$2a$hash"}).Return(nil),
	)

	account, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "$2a$hash", account.Password)
	assert.Nil(t, account.Balance, "balance is backfilled at login, not at registration")
}

func TestCommerceService_Register_DuplicateUsernameTakesPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, _ := newTestCommerceSvc(t, ctrl)

	accounts.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.Account{Username: "alice"}, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestCommerceService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, _ := newTestCommerceSvc(t, ctrl)

	accounts.EXPECT().FindByUsername(gomock.Any(), "bob").Return(models.Account{}, store.ErrAccountNotFound)
	accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(models.Account{Email: "a@x.com"}, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "bob", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCommerceService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{
			name:    "missing username",
			req:     models.RegisterRequest{Email: "a@x.com", Password: "secret1"},
			wantErr: validators.ErrInvalidUsername,
		},
		{
			name:    "malformed email",
			req:     models.RegisterRequest{Username: "alice", Email: "a@x", Password: "secret1"},
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "12345"},
			wantErr: validators.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// no repository or hasher calls are expected
			svc, _, _, _ := newTestCommerceSvc(t, ctrl)

			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCommerceService_Register_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, hasher := newTestCommerceSvc(t, ctrl)
	hashErr := errors.New("hash failed")

	accounts.EXPECT().FindByUsername(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)
	accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrAccountNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("", hashErr)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, hashErr)
}

func TestCommerceService_Register_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, _ := newTestCommerceSvc(t, ctrl)

	accounts.EXPECT().FindByUsername(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrStoreUnavailable)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrDuplicateUsername)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestCommerceService_Login_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, _ := newTestCommerceSvc(t, ctrl)

	accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Login(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCommerceService_Login_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, _, hasher := newTestCommerceSvc(t, ctrl)

	accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(models.Account{Email: "a@x.com", Password: "hash"}, nil)
	hasher.EXPECT().Verify("wrong", "hash").Return(false)

	_, err := svc.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCommerceService_Login_BackfillsAbsentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, session, hasher := newTestCommerceSvc(t, ctrl)

	stored := models.Account{Username: "alice", Email: "a@x.com", Password: "hash"}

	accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(stored, nil)
	hasher.EXPECT().Verify("secret1", "hash").Return(true)
	session.EXPECT().SetSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account models.Account) error {
			require.NotNil(t, account.Balance)
			require.NotNil(t, account.FreeArticles)
			require.NotNil(t, account.GotJackpot)
			require.NotNil(t, account.LuckyDraw)
			require.NotNil(t, account.TotalSpent)
			assert.NotNil(t, account.Owned)
			return nil
		},
	)

	account, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, testStartingBalance, account.BalanceValue())
	assert.Equal(t, int64(0), account.LuckyDrawValue())
	assert.Equal(t, int64(0), account.TotalSpentValue())
	assert.False(t, account.GotJackpotValue())
	assert.Empty(t, account.Owned)
}

func TestCommerceService_Login_KeepsExistingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, session, hasher := newTestCommerceSvc(t, ctrl)

	stored := sessionAccount(1234, 99)
	stored.SetLuckyDraw(2)
	stored.Owned = []models.Article{}

	accounts.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(stored, nil)
	hasher.EXPECT().Verify("secret1", "hash").Return(true)
	session.EXPECT().SetSession(gomock.Any(), stored).Return(nil)

	account, err := svc.Login(context.Background(), "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), account.BalanceValue())
	assert.Equal(t, int64(2), account.LuckyDrawValue())
}

func TestCommerceService_Login_SessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, accounts, session, hasher := newTestCommerceSvc(t, ctrl)

	accounts.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(sessionAccount(1, 0), nil)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
	session.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(store.ErrAccountNotFound)

	_, err := svc.Login(context.Background(), "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCommerceService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	session.EXPECT().ClearSession(gomock.Any()).Return(nil)
	assert.NoError(t, svc.Logout(context.Background()))
}

// ── Purchase ─────────────────────────────────────────────────────────────────

func TestCommerceService_Purchase_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	session.EXPECT().GetSession(gomock.Any()).Return(models.Account{}, store.ErrSessionNotFound)

	_, err := svc.Purchase(context.Background(), models.Article{ID: 1}, 20000)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestCommerceService_Purchase_InsufficientBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	current := sessionAccount(19999, 0)
	session.EXPECT().GetSession(gomock.Any()).Return(current, nil)
	// SetSession must not be called

	account, err := svc.Purchase(context.Background(), models.Article{ID: 1}, 20000)
	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, current, account)
}

func TestCommerceService_Purchase_AlreadyOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	session.EXPECT().GetSession(gomock.Any()).Return(sessionAccount(100000, 20000, models.Article{ID: 1}), nil)

	_, err := svc.Purchase(context.Background(), models.Article{ID: 1}, 20000)
	assert.ErrorIs(t, err, ErrAlreadyOwned)
}

func TestCommerceService_Purchase_NegativePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestCommerceSvc(t, ctrl)

	_, err := svc.Purchase(context.Background(), models.Article{ID: 1}, -1)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCommerceService_Purchase_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	article := models.Article{ID: 42, Title: "Forty two"}
	session.EXPECT().GetSession(gomock.Any()).Return(sessionAccount(100000, 0), nil)
	session.EXPECT().SetSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, account models.Account) error {
			assert.Equal(t, int64(80000), account.BalanceValue())
			assert.Equal(t, int64(20000), account.TotalSpentValue())
			assert.True(t, account.Owns(42))
			return nil
		},
	)

	account, err := svc.Purchase(context.Background(), article, 20000)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), account.BalanceValue())
	assert.Len(t, account.Owned, 1)
}

func TestCommerceService_Purchase_FreeArticleAtZeroBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	session.EXPECT().GetSession(gomock.Any()).Return(sessionAccount(0, 0), nil)
	session.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(nil)

	account, err := svc.Purchase(context.Background(), models.Article{ID: 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), account.BalanceValue())
	assert.True(t, account.Owns(3))
}

func TestCommerceService_Purchase_PersistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	current := sessionAccount(100000, 0)
	session.EXPECT().GetSession(gomock.Any()).Return(current, nil)
	session.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)

	account, err := svc.Purchase(context.Background(), models.Article{ID: 1}, 20000)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.Equal(t, current, account)
}

// ── Ticket grant ─────────────────────────────────────────────────────────────

func TestCommerceService_GrantTicketIfEligible(t *testing.T) {
	tests := []struct {
		name        string
		totalSpent  int64
		wantGranted bool
		wantSpent   int64
		wantTickets int64
	}{
		{name: "above threshold", totalSpent: 60000, wantGranted: true, wantSpent: 10000, wantTickets: 3},
		{name: "exactly threshold", totalSpent: 50000, wantGranted: false, wantSpent: 50000, wantTickets: 0},
		{name: "below threshold", totalSpent: 20000, wantGranted: false, wantSpent: 20000, wantTickets: 0},
		{name: "far above threshold is a flat grant", totalSpent: 170000, wantGranted: true, wantSpent: 120000, wantTickets: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, session, _ := newTestCommerceSvc(t, ctrl)

			if tt.wantGranted {
				session.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(nil)
			}

			account, granted, err := svc.GrantTicketIfEligible(context.Background(), sessionAccount(0, tt.totalSpent))
			require.NoError(t, err)
			assert.Equal(t, tt.wantGranted, granted)
			assert.Equal(t, tt.wantSpent, account.TotalSpentValue())
			assert.Equal(t, tt.wantTickets, account.LuckyDrawValue())
		})
	}
}

func TestCommerceService_PurchaseWithReward_UsesPricing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	article := models.Article{ID: 5, PublishedDate: "2026-03-09"}

	current := sessionAccount(100000, 10000)
	session.EXPECT().GetSession(gomock.Any()).Return(current, nil).Times(2)
	session.EXPECT().SetSession(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	account, granted, err := svc.PurchaseWithReward(context.Background(), article, now)
	require.NoError(t, err)
	assert.True(t, granted)
	assert.Equal(t, int64(50000), account.BalanceValue())
	assert.Equal(t, int64(10000), account.TotalSpentValue())
	assert.Equal(t, int64(3), account.LuckyDrawValue())
}

func TestCommerceService_OwnedArticles(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, session, _ := newTestCommerceSvc(t, ctrl)

	session.EXPECT().GetSession(gomock.Any()).Return(sessionAccount(0, 0, models.Article{ID: 1}, models.Article{ID: 2}), nil)

	owned, err := svc.OwnedArticles(context.Background())
	require.NoError(t, err)
	assert.Len(t, owned, 2)
}

// ── End to end ───────────────────────────────────────────────────────────────

func TestCommerceService_AliceScenario(t *testing.T) {
	ctx := context.Background()

	storages, err := store.NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: store.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	hasher, err := crypto.NewBcryptHasher(4)
	require.NoError(t, err)

	svc := NewCommerceService(storages.Accounts, storages.Session, hasher, validators.NewAccountValidator(), testStartingBalance, logger.Nop())

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.CurrentAccount(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn, "registration does not log in")

	account, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, testStartingBalance, account.BalanceValue())

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	article := models.Article{ID: 100, Title: "Midweek", PublishedDate: "2026-03-05"}
	price := catalog.PriceFor(article, account, now)
	require.Equal(t, catalog.PriceRecent, price)

	account, err = svc.Purchase(ctx, article, price)
	require.NoError(t, err)
	assert.Equal(t, int64(80000), account.BalanceValue())
	assert.Equal(t, int64(20000), account.TotalSpentValue())
	assert.True(t, account.Owns(100))

	stored, err := storages.Accounts.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	current, err := svc.CurrentAccount(ctx)
	require.NoError(t, err)
	assert.Equal(t, current, stored)

	again, err := svc.Purchase(ctx, article, price)
	assert.ErrorIs(t, err, ErrAlreadyOwned)
	assert.Equal(t, int64(80000), again.BalanceValue())
	assert.Len(t, again.Owned, 1)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "alice", Email: "other@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
	_, err = svc.Register(ctx, models.RegisterRequest{Username: "bob", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	all, err := storages.Accounts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.Login(ctx, "a@x.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.CurrentAccount(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	// logging in again keeps the wallet
	account, err = svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(80000), account.BalanceValue())
}
