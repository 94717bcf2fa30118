// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MKhiriev/go-news-kiosk/models"
)

// Price tiers in integer currency units.
const (
	PriceFresh  int64 = 50000
	PriceRecent int64 = 20000
	PriceFree   int64 = 0
)

// Age thresholds in whole days.
const (
	freshDays  = 1
	recentDays = 7
)

const publishedDateLayout = time.DateOnly

// Price returns the list price of article at now:
//   - published at most 1 day ago: [PriceFresh];
//   - at most 7 days ago: [PriceRecent];
//   - older, or with an unparseable date: [PriceFree].
//
// Age is counted in whole calendar days between the two UTC dates, so an
// article published yesterday is 1 day old at any time today.
func Price(article models.Article, now time.Time) int64 {
	age, ok := AgeInDays(article, now)
	if !ok {
		return PriceFree
	}

	switch {
	case age <= freshDays:
		return PriceFresh
	case age <= recentDays:
		return PriceRecent
	default:
		return PriceFree
	}
}

// PriceFor is [Price] adjusted for the buyer: accounts holding free
// articles pay nothing.
func PriceFor(article models.Article, account models.Account, now time.Time) int64 {
	if account.HasFreeArticles() {
		return PriceFree
	}
	return Price(article, now)
}

// AgeInDays returns the number of calendar days between the article's
// published date and now. ok is false when the date cannot be parsed.
func AgeInDays(article models.Article, now time.Time) (days int, ok bool) {
	raw := article.PublishedDate
	if len(raw) > len(publishedDateLayout) {
		raw = raw[:len(publishedDateLayout)]
	}

	published, err := time.Parse(publishedDateLayout, raw)
	if err != nil {
		return 0, false
	}

	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return int(today.Sub(published).Hours() / 24), true
}

var pricePrinter = message.NewPrinter(language.Indonesian)

// FormatPrice renders amount for display: "Free" for zero, otherwise a
// dollar sign followed by the amount grouped with dots ("$50.000").
func FormatPrice(amount int64) string {
	if amount == PriceFree {
		return "Free"
	}
	return "$" + pricePrinter.Sprintf("%d", amount)
}
