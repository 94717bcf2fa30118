package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-news-kiosk/internal/config"
	"github.com/MKhiriev/go-news-kiosk/internal/logger"
	"github.com/MKhiriev/go-news-kiosk/internal/utils"
	"github.com/MKhiriev/go-news-kiosk/models"
)

const (
	mostPopularPath = "/svc/mostpopular/v2/{category}/{period}.json"
	feedStatusOK    = "OK"
)

type httpArticleFeed struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	apiKey string
	period int

	logger *logger.Logger
}

// NewHTTPArticleFeed constructs a resty implementation of [ArticleFeed].
// It normalises and validates the base URL from cfg.FeedAddress, configures
// the HTTP client with the resolved base URL and request timeout, and
// builds a token bucket allowing cfg.RateLimit requests per minute.
//
// Returns an error if cfg.FeedAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPArticleFeed(cfg config.ClientAdapter, logger *logger.Logger) (ArticleFeed, error) {
	baseURL, err := normalizeBaseURL(cfg.FeedAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid feed address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	perMinute := max(cfg.RateLimit, 1)
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)

	return &httpArticleFeed{
		client:  client,
		limiter: limiter,
		apiKey:  cfg.APIKey,
		period:  cfg.Period,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchArticles implements [ArticleFeed]. It waits for the rate limiter,
// then GETs /svc/mostpopular/v2/{category}/{period}.json?api-key=... and
// decodes the results list.
func (f *httpArticleFeed) FetchArticles(ctx context.Context, category models.Category) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		log.Err(err).Str("func", "*httpArticleFeed.FetchArticles").Msg("rate limiter wait aborted")
		return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	var feed models.FeedResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(map[string]string{
			"category": string(category),
			"period":   strconv.Itoa(f.period),
		}).
		SetQueryParam("api-key", f.apiKey).
		SetResult(&feed).
		Get(mostPopularPath)
	if err != nil {
		log.Err(err).Str("func", "*httpArticleFeed.FetchArticles").Str("category", string(category)).Msg("feed request failed")
		return nil, fmt.Errorf("feed request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpArticleFeed.FetchArticles").Int("status", resp.StatusCode()).Msg("feed returned an error status")
		return nil, err
	}

	if feed.Status != "" && feed.Status != feedStatusOK {
		return nil, fmt.Errorf("%w: feed status %q", ErrUnexpectedStatus, feed.Status)
	}
	if feed.Results == nil {
		return nil, fmt.Errorf("%w: missing results", ErrInvalidResponse)
	}

	log.Debug().
		Str("func", "*httpArticleFeed.FetchArticles").
		Str("category", string(category)).
		Int("count", len(feed.Results)).
		Msg("articles fetched")

	return feed.Results, nil
}
