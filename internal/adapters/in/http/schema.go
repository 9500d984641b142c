package http

import (
	"time"

	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
)

// errorResponse is the envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Code       int         `json:"code"`
	Message    string      `json:"message"`
	Violations []violation `json:"violations,omitempty"`
}

// violation names a request field and the rule it broke.
type violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type createUserRequest struct {
	Email string `json:"email" validate:"required"`
	Name  string `json:"name"`
}

type renameUserRequest struct {
	Name string `json:"name" validate:"required"`
}

type userResponse struct {
	ID        kernel.ID[user.RegisteredUser] `json:"id"`
	Email     string                         `json:"email"`
	Name      string                         `json:"name"`
	CreatedAt time.Time                      `json:"createdAt"`
}
