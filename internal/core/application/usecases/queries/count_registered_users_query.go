package queries

import (
	"errors"

	"accounts/internal/pkg/guard"
)

var ErrCountRegisteredUsersQueryIsNotConstructed = errors.New(
	"CountRegisteredUsersQuery must be created via NewCountRegisteredUsersQuery constructor",
)

// CountRegisteredUsersQuery returns the number of stored users.
type CountRegisteredUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewCountRegisteredUsersQuery creates a parameterless count query.
func NewCountRegisteredUsersQuery() CountRegisteredUsersQuery {
	return CountRegisteredUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountRegisteredUsersQuery) Validate() error {
	return q.guard.Validate(ErrCountRegisteredUsersQueryIsNotConstructed)
}
