// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Category selects which most-popular list the feed returns.
type Category string

const (
	CategoryEmailed Category = "emailed"
	CategoryShared  Category = "shared"
	CategoryViewed  Category = "viewed"
)

// Categories lists every supported category in display order.
var Categories = []Category{CategoryEmailed, CategoryShared, CategoryViewed}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEmailed, CategoryShared, CategoryViewed:
		return true
	default:
		return false
	}
}

// Next returns the category following c, wrapping around.
func (c Category) Next() Category {
	for i, cat := range Categories {
		if cat == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return CategoryEmailed
}

// ParseCategory converts s to a [Category].
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
