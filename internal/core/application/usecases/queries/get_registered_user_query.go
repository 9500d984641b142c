// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
	"accounts/internal/pkg/guard"
)

var ErrGetRegisteredUserQueryIsNotConstructed = errors.New(
	"GetRegisteredUserQuery must be created via NewGetRegisteredUserQuery constructor",
)

// GetRegisteredUserQuery retrieves a single user by identifier.
//
// Example:
//
//	query, err := NewGetRegisteredUserQuery(id)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetRegisteredUserQueryHandler(db)
//
//	u, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such user
//	}
type GetRegisteredUserQuery struct {
	userID kernel.ID[user.RegisteredUser]
	guard  guard.ConstructorGuard
}

// NewGetRegisteredUserQuery creates the query. A zero identifier is rejected.
func NewGetRegisteredUserQuery(userID kernel.ID[user.RegisteredUser]) (GetRegisteredUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetRegisteredUserQuery{}, err
	}

	return GetRegisteredUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRegisteredUserQuery) Validate() error {
	return q.guard.Validate(ErrGetRegisteredUserQueryIsNotConstructed)
}

// UserID returns the identifier to look up.
func (q GetRegisteredUserQuery) UserID() kernel.ID[user.RegisteredUser] {
	return q.userID
}

// GetRegisteredUserQueryResponse is the read model of a registered user.
// RegisteredAt is decoded from the identifier and is zero for identifiers
// that carry no timestamp.
type GetRegisteredUserQueryResponse struct {
	ID           kernel.ID[user.RegisteredUser]
	Email        string
	Name         string
	RegisteredAt time.Time
}
