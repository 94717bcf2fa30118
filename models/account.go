// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// Account is a registered storefront user together with its wallet and
// reward state. The whole record is persisted as JSON inside the local
// key-value store, both in the account collection and in the session slot.
//
// Numeric and boolean wallet fields are pointers: nil means the field is
// absent from the stored JSON (e.g. the account was written before the
// field existed). Login backfills absent fields with defaults; use the
// *Value accessors to read them with a zero fallback.
type Account struct {
	// Username is the globally unique display name chosen at registration.
	Username string `json:"username"`

	// Email is the globally unique login identifier. The repository uses it
	// as the key when replacing a stored record.
	Email string `json:"email"`

	// Password holds the one-way hash of the account secret. It is never
	// stored or compared in plaintext once registration has completed.
	Password string `json:"password"`

	// Balance is the spendable amount in integer currency units. Never negative.
	Balance *int64 `json:"balance,omitempty"`

	// FreeArticles is the count of complimentary access; any non-zero value
	// forces the purchase price to zero.
	FreeArticles *int64 `json:"freeArticles,omitempty"`

	// GotJackpot is set once the top-tier reward has been won.
	GotJackpot *bool `json:"gotJackpot,omitempty"`

	// LuckyDraw is the number of redeemable reward tickets. Never negative.
	LuckyDraw *int64 `json:"luckyDraw,omitempty"`

	// Owned lists every purchased article; an article id appears at most once.
	Owned []Article `json:"owned,omitempty"`

	// TotalSpent accumulates purchase amounts and is debited when spending
	// is converted into lucky-draw tickets.
	TotalSpent *int64 `json:"totalSpent,omitempty"`
}

// BalanceValue returns the balance or 0 when absent.
func (a Account) BalanceValue() int64 { return valueOf(a.Balance) }

// FreeArticlesValue returns the free-article count or 0 when absent.
func (a Account) FreeArticlesValue() int64 { return valueOf(a.FreeArticles) }

// LuckyDrawValue returns the ticket count or 0 when absent.
func (a Account) LuckyDrawValue() int64 { return valueOf(a.LuckyDraw) }

// TotalSpentValue returns the cumulative spend or 0 when absent.
func (a Account) TotalSpentValue() int64 { return valueOf(a.TotalSpent) }

// GotJackpotValue reports whether the jackpot has been won.
func (a Account) GotJackpotValue() bool { return valueOf(a.GotJackpot) }

// HasFreeArticles reports whether purchases are complimentary for this account.
func (a Account) HasFreeArticles() bool { return a.FreeArticlesValue() != 0 }

// Owns reports whether an article with the given id has been purchased.
func (a Account) Owns(articleID int64) bool {
	return slices.ContainsFunc(a.Owned, func(article Article) bool {
		return article.ID == articleID
	})
}

// SetBalance stores v as the balance.
func (a *Account) SetBalance(v int64) { a.Balance = &v }

// SetFreeArticles stores v as the free-article count.
func (a *Account) SetFreeArticles(v int64) { a.FreeArticles = &v }

// SetLuckyDraw stores v as the ticket count.
func (a *Account) SetLuckyDraw(v int64) { a.LuckyDraw = &v }

// SetTotalSpent stores v as the cumulative spend.
func (a *Account) SetTotalSpent(v int64) { a.TotalSpent = &v }

// SetGotJackpot stores v as the jackpot flag.
func (a *Account) SetGotJackpot(v bool) { a.GotJackpot = &v }

// Clone returns a deep copy so that callers never share pointer fields or
// the owned slice with the stored record.
func (a Account) Clone() Account {
	out := a
	out.Balance = clonePtr(a.Balance)
	out.FreeArticles = clonePtr(a.FreeArticles)
	out.GotJackpot = clonePtr(a.GotJackpot)
	out.LuckyDraw = clonePtr(a.LuckyDraw)
	out.TotalSpent = clonePtr(a.TotalSpent)
	if a.Owned != nil {
		out.Owned = make([]Article, len(a.Owned))
		for i, article := range a.Owned {
			out.Owned[i] = article.Clone()
		}
	}
	return out
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
