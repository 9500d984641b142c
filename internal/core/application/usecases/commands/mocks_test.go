package commands_test

import (
	"context"

	"accounts/internal/core/application/usecases/commands"
	"accounts/internal/core/domain/model/kernel"
	"accounts/internal/core/domain/model/user"
	"accounts/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(ctx context.Context, u *user.RegisteredUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.RegisteredUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID[user.RegisteredUser]) (*user.RegisteredUser, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.RegisteredUser)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.RegisteredUser, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.RegisteredUser)
	return u, args.Error(1)
}

type MockUserUoW struct {
	mock.Mock
}

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct {
	mock.Mock
}

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}
