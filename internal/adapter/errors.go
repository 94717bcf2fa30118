package adapter

import "errors"

var (
	ErrInvalidCategory  = errors.New("invalid article category")
	ErrUnauthorized     = errors.New("feed rejected the api key")
	ErrRateLimited      = errors.New("feed rate limit exceeded")
	ErrNotFound         = errors.New("feed resource not found")
	ErrUnexpectedStatus = errors.New("unexpected feed response status")
	ErrInvalidResponse  = errors.New("invalid feed response")
)
