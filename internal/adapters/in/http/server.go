// Package http exposes the account use cases over a JSON API built on echo.
package http

import (
	"context"
	"net/http"
	"strings"

	"accounts/internal/core/application/usecases/commands"
	"accounts/internal/core/application/usecases/queries"
	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

type (
	// RegisterUserHandler executes the registration command.
	RegisterUserHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterUserCommand) error
	}

	// RenameUserHandler executes the rename command.
	RenameUserHandler interface {
		Handle(ctx context.Context, cmd commands.RenameUserCommand) error
	}

	// GetRegisteredUserHandler executes the user lookup query.
	GetRegisteredUserHandler interface {
		Handle(ctx context.Context, query queries.GetRegisteredUserQuery) (queries.GetRegisteredUserQueryResponse, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
// Handlers return errors; NewHTTPErrorHandler turns them into responses.
type Server struct {
	// Command handlers
	registerUserHandler RegisterUserHandler
	renameUserHandler   RenameUserHandler

	// Query handlers
	getRegisteredUserHandler GetRegisteredUserHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler RegisterUserHandler,
	renameUserHandler RenameUserHandler,
	getRegisteredUserHandler GetRegisteredUserHandler,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		renameUserHandler:        renameUserHandler,
		getRegisteredUserHandler: getRegisteredUserHandler,
	}
}

// CreateUser handles POST /api/v1/users - registers a new user.
func (s *Server) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(req.Email, req.Name)
	if err != nil {
		return err
	}

	if err = s.registerUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	createdAt, err := cmd.UserID().Timestamp()
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/users/"+cmd.UserID().String())
	return c.JSON(http.StatusCreated, userResponse{
		ID:        cmd.UserID(),
		Email:     cmd.Email(),
		Name:      strings.TrimSpace(cmd.Name()),
		CreatedAt: createdAt,
	})
}

// GetUser handles GET /api/v1/users/:id - retrieves a single user.
func (s *Server) GetUser(c echo.Context) error {
	id, err := kernel.ParseID[user.RegisteredUser](c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetRegisteredUserQuery(id)
	if err != nil {
		return err
	}

	found, err := s.getRegisteredUserHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:        found.ID,
		Email:     found.Email,
		Name:      found.Name,
		CreatedAt: found.RegisteredAt,
	})
}

// RenameUser handles PUT /api/v1/users/:id/name - changes the display name.
func (s *Server) RenameUser(c echo.Context) error {
	id, err := kernel.ParseID[user.RegisteredUser](c.Param("id"))
	if err != nil {
		return err
	}

	var req renameUserRequest
	if err = c.Bind(&req); err != nil {
		return err
	}
	if err = c.Validate(&req); err != nil {
		return err
	}

	cmd, err := commands.NewRenameUserCommand(id, req.Name)
	if err != nil {
		return err
	}

	if err = s.renameUserHandler.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
