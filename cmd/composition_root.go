package cmd

import (
	"context"
	"log/slog"

	httpadapter "deliverychecker/internal/adapters/in/http"
	"deliverychecker/internal/adapters/out/postgres"
	"deliverychecker/internal/core/application/usecases/commands"
	"deliverychecker/internal/core/application/usecases/queries"
	"deliverychecker/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. gormDB is nil when check
// history is disabled; the route check itself needs no storage.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
	}
	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	}
	return root
}

func (c *CompositionRoot) HistoryEnabled() bool {
	return c.gormDB != nil
}

func (c *CompositionRoot) CreateCheckRouteCommandHandler() commands.CheckRouteCommandHandler {
	return commands.NewCheckRouteCommandHandler(c.logger)
}

func (c *CompositionRoot) CreateRecordCheckCommandHandler() commands.RecordCheckCommandHandler {
	return commands.NewRecordCheckCommandHandler(c.checkUoWFactory())
}

func (c *CompositionRoot) CreatePurgeCheckHistoryCommandHandler() commands.PurgeCheckHistoryCommandHandler {
	return commands.NewPurgeCheckHistoryCommandHandler(c.checkUoWFactory())
}

func (c *CompositionRoot) CreateGetCheckQueryHandler() queries.GetCheckQueryHandler {
	return queries.NewGetCheckQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentChecksQueryHandler() queries.GetRecentChecksQueryHandler {
	return queries.NewGetRecentChecksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	server := httpadapter.NewServer(c.CreateCheckRouteCommandHandler(), c.logger)
	if c.HistoryEnabled() {
		server.WithHistory(
			c.CreateRecordCheckCommandHandler(),
			c.CreateGetCheckQueryHandler(),
			c.CreateGetRecentChecksQueryHandler(),
		)
	}
	return server
}

func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	return httpadapter.NewEcho(ctx, c.CreateServer(), c.logger)
}

// CreateJobManager registers the retention job only when history is enabled.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	jm := jobs.NewJobManager()
	if c.HistoryEnabled() {
		jm.Add("history retention", jobs.NewHistoryRetentionJob(
			c.CreatePurgeCheckHistoryCommandHandler(),
			c.config.HistoryRetention,
			c.config.HistoryPurgeSchedule,
			c.logger,
		))
	}
	return jm
}

func (c *CompositionRoot) checkUoWFactory() commands.CheckUoWFactory {
	return FuncCheckUoWFactory(func() commands.CheckUoW {
		return c.uowFactory.Create()
	})
}

type FuncCheckUoWFactory func() commands.CheckUoW

func (f FuncCheckUoWFactory) Create() commands.CheckUoW {
	return f()
}
