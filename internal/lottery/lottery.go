// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lottery implements the lucky-draw reward table: which rewards an
// account may win, how one is drawn and what it does to the account.
package lottery

import (
	"math/rand/v2"

	"github.com/MKhiriev/go-news-kiosk/internal/catalog"
	"github.com/MKhiriev/go-news-kiosk/models"
)

// Kind is the variant of a [Reward].
type Kind int

const (
	// Cash credits Amount to the balance.
	Cash Kind = iota
	// TryAgain has no effect.
	TryAgain
	// ExtraTicket adds Amount tickets.
	ExtraTicket
	// Jackpot credits Amount to the balance and marks the jackpot as won.
	Jackpot
)

func (k Kind) String() string {
	switch k {
	case Cash:
		return "cash"
	case TryAgain:
		return "try_again"
	case ExtraTicket:
		return "extra_ticket"
	case Jackpot:
		return "jackpot"
	default:
		return "unknown"
	}
}

// JackpotAmount is the top-tier prize, won at most once per account.
const JackpotAmount int64 = 50000

// Reward is one entry of the draw table.
type Reward struct {
	Kind   Kind
	Amount int64
	Label  string
}

var (
	baseTable = []Reward{
		{Kind: Cash, Amount: 20000, Label: catalog.FormatPrice(20000)},
		{Kind: TryAgain, Label: "Try Again"},
		{Kind: Cash, Amount: 10000, Label: catalog.FormatPrice(10000)},
		{Kind: Cash, Amount: 5000, Label: catalog.FormatPrice(5000)},
		{Kind: ExtraTicket, Amount: 1, Label: "Extra Ticket"},
	}

	jackpotReward = Reward{Kind: Jackpot, Amount: JackpotAmount, Label: "Jackpot " + catalog.FormatPrice(JackpotAmount)}
)

// Pool returns the rewards account can currently win: the five base
// entries, plus the jackpot while it has not been won.
func Pool(account models.Account) []Reward {
	pool := make([]Reward, 0, len(baseTable)+1)
	pool = append(pool, baseTable...)
	if !account.GotJackpotValue() {
		pool = append(pool, jackpotReward)
	}
	return pool
}

// Rand is the source of draw indices. *rand.Rand from math/rand/v2
// satisfies it; tests supply fixed sequences.
type Rand interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRand returns a [Rand] backed by the runtime-seeded global generator.
func NewRand() Rand {
	return globalRand{}
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Draw picks one entry of pool uniformly. pool must not be empty.
func Draw(rng Rand, pool []Reward) Reward {
	return pool[rng.IntN(len(pool))]
}

// Apply returns a copy of account with the reward's effect applied. It does
// not consume a ticket; that is the redeemer's job.
func (r Reward) Apply(account models.Account) models.Account {
	out := account.Clone()

	switch r.Kind {
	case Cash:
		out.SetBalance(out.BalanceValue() + r.Amount)
	case Jackpot:
		out.SetBalance(out.BalanceValue() + r.Amount)
		out.SetGotJackpot(true)
	case ExtraTicket:
		out.SetLuckyDraw(out.LuckyDrawValue() + r.Amount)
	case TryAgain:
	}

	return out
}
