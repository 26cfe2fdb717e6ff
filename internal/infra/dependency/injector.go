// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shoplist/backend/config"
	"github.com/shoplist/backend/internal/application/adapter"
	"github.com/shoplist/backend/internal/application/usecase/auth"
	"github.com/shoplist/backend/internal/application/usecase/catalog"
	"github.com/shoplist/backend/internal/application/usecase/list"
	"github.com/shoplist/backend/internal/application/usecase/stats"
	"github.com/shoplist/backend/internal/infra/server/router"
	"github.com/shoplist/backend/internal/integration/adapters"
	"github.com/shoplist/backend/internal/integration/cache"
	"github.com/shoplist/backend/internal/integration/email"
	"github.com/shoplist/backend/internal/integration/entrypoint/controller"
	"github.com/shoplist/backend/internal/integration/entrypoint/middleware"
	"github.com/shoplist/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient and emailSender may be nil; the features backed by them
// degrade to no-ops.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, emailSender adapter.EmailSender) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	listRepo := persistence.NewListRepository(db)
	catalogRepo := persistence.NewCatalogRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	clock := adapters.NewSystemClock()

	var popularityStore adapter.PopularityStore
	if redisClient != nil {
		popularityStore = cache.NewPopularityStore(redisClient)
	}

	var shareNotifier adapter.ShareNotifier
	if emailSender != nil {
		shareNotifier = email.NewService(emailSender)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, clock)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create list use cases
	entryResolver := list.NewEntryResolver(catalogRepo, popularityStore, clock, cfg.App.DefaultUnit)
	createListUseCase := list.NewCreateListUseCase(listRepo, clock)
	getListUseCase := list.NewGetListUseCase(listRepo)
	listListsUseCase := list.NewListListsUseCase(listRepo)
	updateListUseCase := list.NewUpdateListUseCase(listRepo, clock)
	deleteListUseCase := list.NewDeleteListUseCase(listRepo)
	addEntryUseCase := list.NewAddEntryUseCase(listRepo, entryResolver, clock)
	updateEntryUseCase := list.NewUpdateEntryUseCase(listRepo, clock)
	removeEntryUseCase := list.NewRemoveEntryUseCase(listRepo, clock)
	toggleAllUseCase := list.NewToggleAllEntriesUseCase(listRepo, clock)
	shareListUseCase := list.NewShareListUseCase(listRepo, userRepo, shareNotifier, clock)
	unshareListUseCase := list.NewUnshareListUseCase(listRepo, clock)

	// Create catalog use cases
	createCatalogItemUseCase := catalog.NewCreateCatalogItemUseCase(catalogRepo, clock, cfg.App.DefaultUnit)
	searchCatalogUseCase := catalog.NewSearchCatalogUseCase(catalogRepo, cfg.App.CatalogSearchMax)
	popularItemsUseCase := catalog.NewPopularItemsUseCase(catalogRepo, popularityStore, cfg.App.PopularItemsLimit)
	deleteCatalogItemUseCase := catalog.NewDeleteCatalogItemUseCase(catalogRepo, userRepo)

	// Create stats use case
	computeStatsUseCase := stats.NewComputeStatsUseCase(listRepo, clock)

	// Create controllers
	dbPing := func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}
	var cachePing controller.Pinger
	if redisClient != nil {
		cachePing = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(dbPing, cachePing)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	listController := controller.NewListController(
		createListUseCase,
		getListUseCase,
		listListsUseCase,
		updateListUseCase,
		deleteListUseCase,
		addEntryUseCase,
		updateEntryUseCase,
		removeEntryUseCase,
		toggleAllUseCase,
		shareListUseCase,
		unshareListUseCase,
	)

	catalogController := controller.NewCatalogController(
		createCatalogItemUseCase,
		searchCatalogUseCase,
		popularItemsUseCase,
		deleteCatalogItemUseCase,
	)

	statsController := controller.NewStatsController(computeStatsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		listController,
		catalogController,
		statsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
