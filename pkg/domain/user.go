package domain

import "github.com/google/uuid"

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// LocalUser is the identity used by the CLI, where there is no authenticated caller.
var LocalUser = UserID(uuid.Nil) //nolint: gochecknoglobals

// String returns the canonical UUID representation.
func (u UserID) String() string {
	return uuid.UUID(u).String()
}
