package routes

import (
	"net/http"
	"time"

	"standup-api-backend/internal/api/handlers"
	"standup-api-backend/internal/api/middleware"
	"standup-api-backend/internal/api/response"
	"standup-api-backend/internal/cache"
	"standup-api-backend/internal/config"
	"standup-api-backend/internal/repository"
	"standup-api-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

// Option customises the router built by SetupRoutes
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock sets the clock the standup windows are computed from
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, c cache.Cache, opts ...Option) *gin.Engine {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
	}

	validator := service.NewValidator()

	// Initialize repositories
	guard := repository.NewMutationGuard(db, cfg.QueryTimeout)
	teamRepo := repository.NewTeamRepository(db, cfg.QueryTimeout)
	userRepo := repository.NewUserRepository(db, cfg.QueryTimeout)
	standupRepo := repository.NewStandupRepository(db, guard, cfg.QueryTimeout)
	activityRepo := repository.NewActivityRepository(db, guard, cfg.QueryTimeout)

	// Initialize services
	userService := service.NewUserService(userRepo, c)
	teamService := service.NewTeamService(teamRepo, userRepo, c)
	standupService := service.NewStandupService(standupRepo, validator)
	if o.clock != nil {
		standupService.WithClock(o.clock)
	}
	activityService := service.NewActivityService(activityRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	standupHandler := handlers.NewStandupHandler(standupService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rosters
	router.GET("/users", userHandler.GetUsers)
	router.GET("/teamname/:team_id", teamHandler.GetTeamName)
	router.GET("/teams/members/:team_id", teamHandler.GetTeamMembers)

	// Standups
	standups := router.Group("/standups")
	{
		standups.GET("/previous/:team_id", standupHandler.GetPreviousStandups)
		standups.GET("/next/:team_id", standupHandler.GetNextStandup)
		standups.POST("/:team_id", standupHandler.CreateStandup)
		standups.PUT("/:standup_id", standupHandler.UpdateStandup)
		standups.PUT("/notes/:standup_id", standupHandler.UpdateStandupNotes)
		standups.GET("/activities/:standup_id", activityHandler.GetStandupActivities)
	}

	// Activities
	activities := router.Group("/activity")
	{
		activities.POST("/:standup_id", activityHandler.CreateActivity)
		activities.PUT("/:activity_id", activityHandler.UpdateActivity)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.MsgRouteNotFound)
	})

	return router
}
