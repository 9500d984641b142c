package queries

import (
	"context"

	"gorm.io/gorm"
)

// CountRegisteredUsersQueryHandler counts rows in registered_users.
type CountRegisteredUsersQueryHandler struct {
	db *gorm.DB
}

// NewCountRegisteredUsersQueryHandler creates a handler for user counts.
func NewCountRegisteredUsersQueryHandler(db *gorm.DB) CountRegisteredUsersQueryHandler {
	return CountRegisteredUsersQueryHandler{db: db}
}

// Handle returns the current number of registered users.
func (h CountRegisteredUsersQueryHandler) Handle(ctx context.Context, query CountRegisteredUsersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := h.db.WithContext(ctx).Raw(`SELECT count(*) FROM registered_users`).Row().Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
