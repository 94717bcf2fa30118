// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-news-kiosk/internal/store"
)

// mapStoreError translates a store sentinel into the service error kind the
// caller can act on. Unknown errors are returned unchanged.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		return ErrNotLoggedIn
	case errors.Is(err, store.ErrAccountNotFound):
		return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	}

	return err
}
