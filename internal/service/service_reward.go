package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/lottery"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/models"
)

type rewardService struct {
	session store.SessionManager
	rng     lottery.Rand
	logger  *logger.Logger
}

// NewRewardService builds a RewardService drawing with rng. A nil rng uses
// the runtime-seeded generator.
func NewRewardService(session store.SessionManager, rng lottery.Rand, logger *logger.Logger) RewardService {
	if rng == nil {
		rng = lottery.NewRand()
	}
	return &rewardService{session: session, rng: rng, logger: logger}
}

func (s *rewardService) RedeemTicket(ctx context.Context) (models.Account, string, error) {
	ctx, log := logger.WithTraceID(ctx, s.logger)

	account, err := s.session.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Account{}, "", ErrNotLoggedIn
		}
		log.Err(err).Msg("error reading session")
		return models.Account{}, "", fmt.Errorf("error reading session: %w", err)
	}

	if account.LuckyDrawValue() <= 0 {
		return account, "", ErrNoTicketsAvailable
	}

	reward := lottery.Draw(s.rng, lottery.Pool(account))

	spent := account.Clone()
	spent.SetLuckyDraw(account.LuckyDrawValue() - 1)
	updated := reward.Apply(spent)

	if err = s.session.SetSession(ctx, updated); err != nil {
		log.Err(err).Str("reward", reward.Kind.String()).Msg("error saving redemption")
		return account, "", fmt.Errorf("error saving redemption: %w", mapStoreError(err))
	}

	log.Info().
		Str("reward", reward.Kind.String()).
		Int64("amount", reward.Amount).
		Int64("tickets_left", updated.LuckyDrawValue()).
		Msg("ticket redeemed")

	return updated, reward.Label, nil
}
