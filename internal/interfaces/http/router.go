package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appmodmail "gatehouse/internal/application/modmail"
	"gatehouse/internal/application/review/usecases"
	"gatehouse/internal/domain/application"
	"gatehouse/internal/infrastructure/config"
	"gatehouse/internal/infrastructure/ratelimit"
	"gatehouse/internal/infrastructure/repository"
	modmailhandlers "gatehouse/internal/interfaces/http/handlers/modmail"
	reviewhandlers "gatehouse/internal/interfaces/http/handlers/review"
	"gatehouse/internal/interfaces/http/middleware"
	"gatehouse/internal/interfaces/http/routes"
	"gatehouse/internal/shared/db"
	"gatehouse/internal/shared/logger"
)

// Router owns the fully wired HTTP surface. The modmail cache is exposed
// so the server can hydrate it before listening.
type Router struct {
	engine      *gin.Engine
	threadCache *appmodmail.ThreadCache
}

// NewRouter wires repositories, use cases, handlers and routes. The
// notifier is injected because its construction depends on deployment
// configuration, not on anything the router knows about.
func NewRouter(
	cfg *config.Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	notifier application.Notifier,
	log logger.Interface,
) *Router {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Recovery())

	appRepo := repository.NewApplicationRepository(gormDB)
	claimRepo := repository.NewClaimRepository(gormDB)
	logRepo := repository.NewActionLogRepository(gormDB)
	codeRepo := repository.NewShortCodeRepository(gormDB)
	threadRepo := repository.NewModmailThreadRepository(gormDB)
	txMgr := db.NewTransactionManager(gormDB)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	} else {
		limiter = ratelimit.NewNoopRateLimiter()
	}
	rateLimit := middleware.ReviewRateLimit(limiter, cfg.Review.RateLimitPerMinute, log)

	reviewHandler := reviewhandlers.NewReviewHandler(
		usecases.NewSubmitApplicationUseCase(appRepo, codeRepo, txMgr, cfg.Review.ShortCodeAttempts, log),
		usecases.NewClaimApplicationUseCase(appRepo, claimRepo, logRepo, txMgr, log),
		usecases.NewUnclaimApplicationUseCase(appRepo, claimRepo, logRepo, txMgr, log),
		usecases.NewDecideApplicationUseCase(appRepo, claimRepo, logRepo, notifier, txMgr, log),
		usecases.NewGetApplicationUseCase(appRepo, claimRepo, log),
		usecases.NewResolveCodeUseCase(appRepo, claimRepo, codeRepo, log),
		usecases.NewRecentActionsUseCase(appRepo, logRepo, log),
		usecases.NewReviewStatsUseCase(appRepo, logRepo, log),
		cfg.Review.StatsWindowDays,
	)

	threadCache := appmodmail.NewThreadCache(threadRepo, log)
	modmailHandler := modmailhandlers.NewModmailHandler(threadCache)

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")
	routes.SetupReviewRoutes(api, &routes.ReviewRouteConfig{
		ReviewHandler: reviewHandler,
		RateLimit:     rateLimit,
	})
	routes.SetupModmailRoutes(api, &routes.ModmailRouteConfig{
		ModmailHandler: modmailHandler,
	})

	return &Router{
		engine:      engine,
		threadCache: threadCache,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) ThreadCache() *appmodmail.ThreadCache {
	return r.threadCache
}

func ginMode(mode string) string {
	switch mode {
	case "release", "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
