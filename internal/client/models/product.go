package models

import "time"

// Product is a catalog item in the local store. Rows come either from the
// bootstrap seed set or from the remote catalog during sync.
type Product struct {
	// ID is assigned by the local store on insert.
	ID int64

	Name string

	// Price is non-negative, in the store's display currency.
	Price float64

	// Category is free text; filtering matches it case-insensitively.
	Category string

	Description string

	ImageURL string

	// Stock is a non-negative unit count. Remote catalog items carry no
	// stock, so synced rows get a fixed placeholder value.
	Stock int

	CreatedAt time.Time
}
