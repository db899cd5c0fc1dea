package models

import "regexp"

// slugPattern matches lowercase alphanumeric runs joined by single
// hyphens: "hello-world", "hello123", "123-hello". Leading/trailing
// hyphens, doubled hyphens, uppercase and underscores are rejected.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is usable as an organization slug.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Organization represents a tenant. All business data and user
// sessions are scoped to exactly one organization.
type Organization struct {
	// ID is the unique identifier for the organization (UUID format).
	ID string

	// Slug is the URL-safe identifier used in API paths and login
	// scoping (e.g. /org/{slug}/auth/login). Unique across tenants.
	Slug string

	// Name is the display name of the organization.
	Name string

	// Currency is the ISO 4217 code used when formatting amounts
	// for this organization (e.g. "USD", "EGP").
	Currency string

	// CreatedAt is the Unix timestamp when the organization was created.
	CreatedAt int64
}
