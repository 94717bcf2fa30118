package service

import (
	"fmt"

	"github.com/MKhiriev/go-news-kiosk/internal/adapter"
	"github.com/MKhiriev/go-news-kiosk/internal/config"
	"github.com/MKhiriev/go-news-kiosk/internal/crypto"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/lottery"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/internal/validators"
)

type ClientServices struct {
	CommerceService CommerceService
	RewardService   RewardService
	CatalogService  CatalogService
	FeedRefreshJob  FeedRefreshJob
}

func NewClientServices(
	storages *store.ClientStorages,
	feed adapter.ArticleFeed,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) (*ClientServices, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	commerceSvc := NewCommerceService(
		storages.Accounts,
		storages.Session,
		hasher,
		validators.NewAccountValidator(),
		cfg.App.StartingBalance,
		logger.GetChildLogger(),
	)
	rewardSvc := NewRewardService(storages.Session, lottery.NewRand(), logger.GetChildLogger())
	catalogSvc := NewCatalogService(feed, storages.SelectedArticle, cfg.Adapter.FeedErrorPolicy, logger.GetChildLogger())

	return &ClientServices{
		CommerceService: commerceSvc,
		RewardService:   rewardSvc,
		CatalogService:  catalogSvc,
		FeedRefreshJob:  NewFeedRefreshJob(catalogSvc, cfg.Workers.FeedRefreshInterval, logger.GetChildLogger()),
	}, nil
}
