package domain

import "github.com/google/uuid"

// UserID identifies the user who requested a discovery run. It wraps
// uuid.UUID for type safety at the domain layer; the API layer fills it from
// the bearer token subject.
type UserID uuid.UUID

// String returns the canonical UUID text form.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}
