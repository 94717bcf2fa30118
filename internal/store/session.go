package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/models"
)

// sessionManager keeps the logged-in account under [KeySession] as a
// one-element JSON array and mirrors every write into the account
// repository.
type sessionManager struct {
	kv       KeyValueStore
	accounts AccountRepository
	logger   *logger.Logger
}

// NewSessionManager constructs a [SessionManager] writing through to accounts.
func NewSessionManager(kv KeyValueStore, accounts AccountRepository, logger *logger.Logger) SessionManager {
	return &sessionManager{
		kv:       kv,
		accounts: accounts,
		logger:   logger,
	}
}

// SetSession updates the stored account record first, so that a rejected
// update (strict sync) leaves the session slot untouched, then writes the
// slot.
func (s *sessionManager) SetSession(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if err := s.accounts.Update(ctx, account); err != nil {
		log.Err(err).Str("func", "*sessionManager.SetSession").Msg("error syncing session into accounts")
		return fmt.Errorf("error syncing session: %w", err)
	}

	if err := setJSON(ctx, s.kv, KeySession, []models.Account{account}); err != nil {
		log.Err(err).Str("func", "*sessionManager.SetSession").Msg("error writing session")
		return fmt.Errorf("error writing session: %w", err)
	}

	return nil
}

// GetSession accepts both the array shape written by SetSession and a bare
// JSON object.
func (s *sessionManager) GetSession(ctx context.Context) (models.Account, error) {
	raw, err := s.kv.Get(ctx, KeySession)
	if errors.Is(err, ErrKeyNotFound) {
		return models.Account{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("error reading session: %w", err)
	}

	return decodeSession(raw)
}

func (s *sessionManager) ClearSession(ctx context.Context) error {
	if err := s.kv.Remove(ctx, KeySession); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func decodeSession(raw string) (models.Account, error) {
	var list []models.Account
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		if len(list) == 0 {
			return models.Account{}, ErrSessionNotFound
		}
		return list[0], nil
	}

	var account models.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return models.Account{}, fmt.Errorf("%w: key %q: %w", ErrCorruptedValue, KeySession, err)
	}
	return account, nil
}
