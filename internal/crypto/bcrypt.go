// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCost is returned by [NewBcryptHasher] for a cost outside the
// range bcrypt accepts.
var ErrInvalidCost = errors.New("invalid bcrypt cost")

// DefaultCost is the cost factor used for account passwords (2^10 rounds).
const DefaultCost = 10

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt cost.
// The cost must lie within [bcrypt.MinCost] and [bcrypt.MaxCost]; tests use
// the minimum to stay fast.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}
	return &bcryptHasher{cost: cost}, nil
}

func (h *bcryptHasher) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
