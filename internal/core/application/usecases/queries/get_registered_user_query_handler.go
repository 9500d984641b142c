package queries

import (
	"context"
	"database/sql"
	"errors"

	"accounts/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRegisteredUserQueryHandler reads a user straight from the database,
// bypassing the aggregate.
type GetRegisteredUserQueryHandler struct {
	db *gorm.DB
}

// NewGetRegisteredUserQueryHandler creates a handler for user lookups.
func NewGetRegisteredUserQueryHandler(db *gorm.DB) GetRegisteredUserQueryHandler {
	return GetRegisteredUserQueryHandler{db: db}
}

// Handle returns the user or an error matching errs.ErrObjectNotFound.
func (h GetRegisteredUserQueryHandler) Handle(
	ctx context.Context,
	query GetRegisteredUserQuery,
) (GetRegisteredUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRegisteredUserQueryResponse{}, err
	}

	var resp GetRegisteredUserQueryResponse

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			name
		FROM registered_users
		WHERE id = ?
	`, query.UserID()).Row().Scan(
		&resp.ID,
		&resp.Email,
		&resp.Name,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRegisteredUserQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID().String())
	}
	if err != nil {
		return GetRegisteredUserQueryResponse{}, err
	}

	if registeredAt, tsErr := resp.ID.Timestamp(); tsErr == nil {
		resp.RegisteredAt = registeredAt
	}

	return resp, nil
}
