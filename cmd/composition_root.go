package cmd

import (
	"log/slog"

	apihttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/crudstore"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/crud"
	"storefront/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateAccountCommandHandler() commands.DeactivateAccountCommandHandler {
	return commands.NewDeactivateAccountCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderOwnerQueryHandler() queries.GetOrderOwnerQueryHandler {
	return queries.NewGetOrderOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateUserResource() crud.Resource[crud.UserView] {
	return crud.NewUserResource(crudstore.NewUserStore(c.gormDB))
}

func (c *CompositionRoot) CreateAuthenticator() *apihttp.Authenticator {
	return apihttp.NewAuthenticator(c.configs.JWTSecret, c.configs.JWTIssuer)
}

func (c *CompositionRoot) CreateServer() *apihttp.Server {
	updateProfile := c.CreateUpdateProfileCommandHandler()
	deactivateAccount := c.CreateDeactivateAccountCommandHandler()
	updateOrder := c.CreateUpdateOrderCommandHandler()
	cancelOrder := c.CreateCancelOrderCommandHandler()

	return apihttp.NewServer(
		&updateProfile,
		&deactivateAccount,
		&updateOrder,
		&cancelOrder,
		c.CreateUserResource(),
		c.CreateGetOrderOwnerQueryHandler(),
	)
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
