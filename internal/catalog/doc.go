// Package catalog holds the pure helpers of the storefront: article
// pricing, thumbnail selection, text truncation, title search, pagination
// and price display. Nothing in this package performs I/O; the current time
// is always passed in by the caller.
package catalog
