// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strconv"

	"github.com/MKhiriev/go-news-kiosk/internal/app"
	"github.com/MKhiriev/go-news-kiosk/internal/service"
	"github.com/MKhiriev/go-news-kiosk/internal/store"
	"github.com/MKhiriev/go-news-kiosk/internal/validators"
)

// ErrUserQuit is returned by [TUI.Run] when the user closes the program.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns an error kind into the message shown to the user.
// Field errors are reported in form order, first failing field wins.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, validators.ErrInvalidUsername):
		return app.MsgUsernameRequired
	case errors.Is(err, validators.ErrInvalidEmail):
		return app.MsgInvalidEmailFormat
	case errors.Is(err, validators.ErrInvalidPassword):
		return app.MsgPasswordTooShort
	case errors.Is(err, service.ErrInvalidDataProvided):
		return app.MsgInvalidDataProvided
	case errors.Is(err, service.ErrDuplicateUsername):
		return app.MsgDuplicateUsername
	case errors.Is(err, service.ErrDuplicateEmail):
		return app.MsgDuplicateEmail
	case errors.Is(err, service.ErrAccountNotFound):
		return app.MsgAccountNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgIncorrectPassword
	case errors.Is(err, service.ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, service.ErrInsufficientBalance):
		return app.MsgInsufficientBalance
	case errors.Is(err, service.ErrAlreadyOwned):
		return app.MsgAlreadyOwned
	case errors.Is(err, service.ErrNoTicketsAvailable):
		return app.MsgNoTicketsAvailable
	case errors.Is(err, service.ErrFeedUnavailable):
		return app.MsgFeedUnavailable
	case errors.Is(err, store.ErrNoArticleSelected):
		return app.MsgNoArticleSelected
	case errors.Is(err, store.ErrStoreUnavailable), errors.Is(err, store.ErrStoreNotMigrated):
		return app.MsgStorageUnavailable
	}

	return app.MsgUnexpectedError
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
