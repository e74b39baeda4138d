package cmd

import (
	"context"
	"log/slog"

	"campusfood/api"
	httpin "campusfood/internal/adapters/in/http"
	"campusfood/internal/adapters/out/auth"
	"campusfood/internal/adapters/out/postgres"
	"campusfood/internal/adapters/out/postgres/credentialrepo"
	"campusfood/internal/adapters/out/postgres/menurepo"
	"campusfood/internal/adapters/out/postgres/shoprepo"
	"campusfood/internal/core/application/usecases/commands"
	"campusfood/internal/core/application/usecases/queries"
	"campusfood/internal/core/domain/services"
	"campusfood/internal/core/ports"
	"campusfood/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.Cache
	publisher  ports.EventPublisher
	tokens     *auth.JWTIssuer
	hasher     auth.BcryptHasher
	logger     *slog.Logger
}

// NewCompositionRoot wires the application around an open database and cache. A nil
// publisher leaves order events in the outbox.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	cache ports.Cache,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	tokens, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		publisher:  publisher,
		tokens:     tokens,
		hasher:     auth.NewBcryptHasher(cfg.BcryptCost),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) checkout() services.Checkout {
	return services.NewCheckout(services.NewPricingCalculator())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.checkout())
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateMenuItemCommandHandler() commands.MenuItemCommandHandler {
	var f commands.MenuUoWFactory = FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMenuItemCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRegisterCommandHandler() commands.RegisterCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCommandHandler(f, c.hasher, c.cfg.CampusEmailDomain)
}

func (c *CompositionRoot) CreateUpdateStudentProfileCommandHandler() commands.UpdateStudentProfileCommandHandler {
	var f commands.StudentUoWFactory = FuncStudentUoWFactory(func() commands.StudentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStudentProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShopProfileCommandHandler() commands.UpdateShopProfileCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShopProfileCommandHandler(f, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(credentialrepo.NewGormCredentialRepository(c.gormDB), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateQuoteCartQueryHandler() queries.QuoteCartQueryHandler {
	return queries.NewQuoteCartQueryHandler(
		shoprepo.NewGormShopRepository(c.gormDB),
		menurepo.NewGormMenuRepository(c.gormDB),
		c.checkout(),
	)
}

func (c *CompositionRoot) CreateGetShopMenuQueryHandler() queries.GetShopMenuQueryHandler {
	return queries.NewGetShopMenuQueryHandler(c.gormDB, c.cache, c.logger)
}

// CreateHTTPHandlers collects every use case the HTTP adapter serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		Register:             c.CreateRegisterCommandHandler(),
		UpdateStudentProfile: c.CreateUpdateStudentProfileCommandHandler(),
		UpdateShopProfile:    c.CreateUpdateShopProfileCommandHandler(),
		MenuItems:            c.CreateMenuItemCommandHandler(),
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		TransitionOrder:      c.CreateTransitionOrderStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),

		Login:             c.CreateLoginQueryHandler(),
		ListShops:         queries.NewListShopsQueryHandler(c.gormDB),
		GetShopMenu:       c.CreateGetShopMenuQueryHandler(),
		QuoteCart:         c.CreateQuoteCartQueryHandler(),
		GetStudentProfile: queries.NewGetStudentProfileQueryHandler(c.gormDB),
		GetShopProfile:    queries.NewGetShopProfileQueryHandler(c.gormDB),
		ListOwnMenu:       queries.NewListOwnMenuQueryHandler(c.gormDB),
		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
	}
}

// CreateRouter builds the echo instance serving the embedded OpenAPI document.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	server := httpin.NewServer(c.CreateHTTPHandlers(), c.tokens)
	return httpin.NewRouter(server, doc, c.tokens, c.logger)
}

// CreateJobManager schedules the outbox relay when a broker is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	if c.publisher == nil {
		return jobs.NewJobManager(nil, c.cfg.OutboxBatchSize, c.logger)
	}
	relayer := c.CreateRelayOutboxCommandHandler()
	return jobs.NewJobManager(&relayer, c.cfg.OutboxBatchSize, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncStudentUoWFactory func() commands.StudentUoW

func (f FuncStudentUoWFactory) Create() commands.StudentUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
