package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/models"
)

func newTestSession(t *testing.T, strict bool) (SessionManager, AccountRepository, KeyValueStore) {
	t.Helper()
	kv := NewMemoryKeyValueStore()
	repo := NewAccountRepository(kv, strict, logger.Nop())
	return NewSessionManager(kv, repo, logger.Nop()), repo, kv
}

func TestSessionManager_EmptySlot(t *testing.T) {
	session, _, _ := newTestSession(t, false)

	_, err := session.GetSession(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_SetSessionWritesThrough(t *testing.T) {
	ctx := context.Background()
	session, repo, kv := newTestSession(t, false)

	require.NoError(t, repo.Insert(ctx, testAccount("alice", "alice@x.io")))

	account := testAccount("alice", "alice@x.io")
	account.SetBalance(50000)
	account.Owned = []models.Article{{ID: 7, Title: "Seven"}}
	require.NoError(t, session.SetSession(ctx, account))

	current, err := session.GetSession(ctx)
	require.NoError(t, err)
	stored, err := repo.FindByEmail(ctx, "alice@x.io")
	require.NoError(t, err)

	assert.Equal(t, current, stored)
	assert.Equal(t, int64(50000), stored.BalanceValue())
	assert.True(t, stored.Owns(7))

	// the slot keeps the one-element array shape
	raw, err := kv.Get(ctx, KeySession)
	require.NoError(t, err)
	assert.Equal(t, byte('['), raw[0])
}

func TestSessionManager_StrictRejectsUnknownAccount(t *testing.T) {
	ctx := context.Background()
	session, _, _ := newTestSession(t, true)

	err := session.SetSession(ctx, testAccount("ghost", "ghost@x.io"))
	assert.ErrorIs(t, err, ErrAccountNotFound)

	_, err = session.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionManager_ClearSessionKeepsAccounts(t *testing.T) {
	ctx := context.Background()
	session, repo, _ := newTestSession(t, false)

	account := testAccount("alice", "alice@x.io")
	require.NoError(t, repo.Insert(ctx, account))
	require.NoError(t, session.SetSession(ctx, account))

	require.NoError(t, session.ClearSession(ctx))

	_, err := session.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.FindByEmail(ctx, "alice@x.io")
	assert.NoError(t, err)
}

func TestDecodeSession(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "array", raw: `[{"username":"alice","email":"alice@x.io"}]`, want: "alice"},
		{name: "object", raw: `{"username":"bob","email":"bob@x.io"}`, want: "bob"},
		{name: "empty array", raw: `[]`, wantErr: ErrSessionNotFound},
		{name: "null", raw: `null`, wantErr: ErrSessionNotFound},
		{name: "garbage", raw: `"alice"`, wantErr: ErrCorruptedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := decodeSession(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, account.Username)
		})
	}
}
