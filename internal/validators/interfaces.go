// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the commerce
// engine. Registration and login requests are validated with struct tags
// and a custom loose e-mail rule; each failing field is reported as its own
// sentinel so the presentation layer can show one message per field.
package validators

import "context"

// Validator validates a request value. When fields are given, only those
// struct fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
