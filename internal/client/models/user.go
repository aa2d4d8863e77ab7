// Package models defines client-side data models for the LevelUp storefront.
package models

import "time"

// User is an account record persisted in the local database. The same row
// backs both remote-authenticated and offline-only sessions.
type User struct {
	// ID is assigned by the local store on insert.
	ID int64

	// Email identifies the account. Uniqueness is enforced by
	// lookup-before-insert in the service layer, not by the schema.
	Email string

	// Password holds the encoded credential hash (see cryptox), kept so
	// login keeps working while the identity endpoint is unreachable.
	Password string

	// Name is the display name. Refreshed from the remote profile on a
	// successful online login.
	Name string

	Country string

	// ProfileImagePath references a locally stored avatar; empty when unset.
	ProfileImagePath string

	// CreatedAt is set once at registration time.
	CreatedAt time.Time
}

// RemoteUser is the profile shape returned by the identity endpoint.
type RemoteUser struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}
