// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Page is one slice of a paginated list. Number is 1-based.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// HasPrev reports whether a page precedes this one.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }
