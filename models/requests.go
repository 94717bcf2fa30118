// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest carries the registration form input. Password is the
// plaintext secret and is hashed before anything is persisted.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest carries the login form input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required"`
}

// BrowseQuery describes one view of the article feed.
type BrowseQuery struct {
	Category Category
	Search   string
	Page     int
}

// AppBuildInfo describes the running binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
