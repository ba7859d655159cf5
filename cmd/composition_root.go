package cmd

import (
	"context"
	"log/slog"

	httpadapter "mealbox/internal/adapters/in/http"
	"mealbox/internal/core/application/usecases/commands"
	"mealbox/internal/core/application/usecases/queries"
	"mealbox/internal/core/domain/model/kernel"
	"mealbox/internal/core/ports"
	"mealbox/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		clock:      kernel.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetCustomerOrderStatusQueryHandler() queries.GetCustomerOrderStatusQueryHandler {
	return queries.NewGetCustomerOrderStatusQueryHandler(c.readUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readUoWFactory(), c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readUoWFactory())
}

func (c *CompositionRoot) CreateGetSalesReportQueryHandler() queries.GetSalesReportQueryHandler {
	return queries.NewGetSalesReportQueryHandler(c.readUoWFactory(), c.clock, c.logger)
}

// CreateHTTPHandler wires every use case into the echo router.
func (c *CompositionRoot) CreateHTTPHandler(ctx context.Context) (*echo.Echo, error) {
	server := httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetCustomerOrderStatusQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetSalesReportQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(ctx, server, c.configs.RequestTimeout)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetSalesReportQueryHandler(), c.configs.ReportSchedule, c.logger)
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
