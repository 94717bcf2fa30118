package service

import "errors"

// Domain error kinds returned by the services. The presentation layer
// matches them with errors.Is and alone decides how they are worded.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email/password")
	ErrNotLoggedIn        = errors.New("user not logged in")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyOwned        = errors.New("article already owned")
	ErrNoTicketsAvailable  = errors.New("no lucky draw tickets available")

	ErrFeedUnavailable = errors.New("article feed unavailable")
)
