package cmd

import (
	"context"
	"log/slog"

	httpadapter "accounts/internal/adapters/in/http"
	"accounts/internal/adapters/out/postgres"
	"accounts/internal/core/application/usecases/commands"
	"accounts/internal/core/application/usecases/queries"
	"accounts/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	registry   *prometheus.Registry
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
	}
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateRenameUserCommandHandler() commands.RenameUserCommandHandler {
	return commands.NewRenameUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateGetRegisteredUserQueryHandler() queries.GetRegisteredUserQueryHandler {
	return queries.NewGetRegisteredUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountRegisteredUsersQueryHandler() queries.CountRegisteredUsersQueryHandler {
	return queries.NewCountRegisteredUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateCountRegisteredUsersQueryHandler(), c.registry, c.logger)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	registerUser := c.CreateRegisterUserCommandHandler()
	renameUser := c.CreateRenameUserCommandHandler()

	server := httpadapter.NewServer(
		&registerUser,
		&renameUser,
		c.CreateGetRegisteredUserQueryHandler(),
	)
	return httpadapter.NewRouter(ctx, server, c.logger, c.registry)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
