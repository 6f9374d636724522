package routes

import (
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/api/handlers"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/api/middleware"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/auth"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/config"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/logger"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/repository"
	"github.com/CyberToe/HockeyAnalyst-sub000/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator and logger
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewTeamMemberRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	gameRepo := repository.NewGameRepository(db)
	periodRepo := repository.NewPeriodRepository(db)
	gamePlayerRepo := repository.NewGamePlayerRepository(db)
	shotRepo := repository.NewShotRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	faceoffRepo := repository.NewFaceoffRepository(db)

	// Initialize auth
	authService, err := auth.NewService(cfg.JWTSecret, cfg.TokenExpiry())
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewMiddleware(authService, userRepo)

	// Initialize services
	membershipService := service.NewMembershipService(teamRepo, memberRepo)
	userService := service.NewUserService(userRepo, authService, validator)
	teamService := service.NewTeamService(teamRepo, memberRepo, membershipService, validator, log)
	playerService := service.NewPlayerService(playerRepo, shotRepo, membershipService, validator)
	gameService := service.NewGameService(gameRepo, periodRepo, gamePlayerRepo, playerRepo, shotRepo, membershipService, validator)
	shotService := service.NewShotService(shotRepo, periodRepo, playerRepo, gameService, validator)
	goalService := service.NewGoalService(goalRepo, playerRepo, gameService, validator)
	faceoffService := service.NewFaceoffService(faceoffRepo, playerRepo, gameService, validator)
	analyticsService := service.NewAnalyticsService(gameRepo, playerRepo, shotRepo, goalRepo, faceoffRepo, periodRepo, gameService, membershipService, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	gameHandler := handlers.NewGameHandler(gameService)
	shotHandler := handlers.NewShotHandler(shotService)
	goalHandler := handlers.NewGoalHandler(goalService)
	faceoffHandler := handlers.NewFaceoffHandler(faceoffService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes behind the per-IP rate limiter
	api := router.Group("/api")
	api.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg)))

	// Public auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Everything else requires a valid bearer token
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())

	teams := protected.Group("/teams")
	{
		teams.GET("", teamHandler.GetTeams)
		teams.POST("", teamHandler.CreateTeam)
		teams.POST("/join", teamHandler.JoinTeam)
		teams.GET("/:teamId", teamHandler.GetTeam)
		teams.PUT("/:teamId", teamHandler.UpdateTeam)
		teams.DELETE("/:teamId", teamHandler.DeleteTeam)
		teams.POST("/:teamId/leave", teamHandler.LeaveTeam)
		teams.GET("/:teamId/members", teamHandler.GetMembers)
		teams.PUT("/:teamId/members/:userId/role", teamHandler.UpdateMemberRole)
		teams.DELETE("/:teamId/members/:userId", teamHandler.RemoveMember)
	}

	players := protected.Group("/players")
	{
		players.GET("/teams/:teamId", playerHandler.GetPlayers)
		players.POST("/teams/:teamId", playerHandler.CreatePlayer)
		players.PUT("/:playerId", playerHandler.UpdatePlayer)
		players.DELETE("/:playerId", playerHandler.DeletePlayer)
	}

	games := protected.Group("/games")
	{
		games.GET("/teams/:teamId", gameHandler.GetGames)
		games.POST("/teams/:teamId", gameHandler.CreateGame)
		games.GET("/:gameId", gameHandler.GetGame)
		games.PUT("/:gameId", gameHandler.UpdateGame)
		games.DELETE("/:gameId", gameHandler.DeleteGame)
		games.GET("/:gameId/periods", gameHandler.GetPeriods)
		games.PUT("/:gameId/periods", gameHandler.SetDirections)
		games.PUT("/:gameId/periods/:periodId", gameHandler.UpdatePeriod)
		games.GET("/:gameId/players", gameHandler.GetGamePlayers)
		games.PUT("/:gameId/players/:playerId", gameHandler.UpdateGamePlayer)
	}

	shots := protected.Group("/shots")
	{
		shots.GET("/games/:gameId", shotHandler.GetShots)
		shots.POST("/games/:gameId", shotHandler.CreateShot)
		shots.DELETE("/games/:gameId", shotHandler.DeleteShots)
		shots.PUT("/:shotId", shotHandler.UpdateShot)
		shots.DELETE("/:shotId", shotHandler.DeleteShot)
	}

	goals := protected.Group("/goals")
	{
		goals.GET("/games/:gameId", goalHandler.GetGoals)
		goals.POST("/games/:gameId", goalHandler.CreateGoal)
		goals.PUT("/:goalId", goalHandler.UpdateGoal)
		goals.DELETE("/:goalId", goalHandler.DeleteGoal)
	}

	faceoffs := protected.Group("/faceoffs")
	{
		faceoffs.GET("/games/:gameId", faceoffHandler.GetFaceoffs)
		faceoffs.POST("/games/:gameId", faceoffHandler.CreateFaceoff)
		faceoffs.POST("/:faceoffId/increment", faceoffHandler.IncrementFaceoff)
		faceoffs.PUT("/:faceoffId", faceoffHandler.UpdateFaceoff)
		faceoffs.DELETE("/:faceoffId", faceoffHandler.DeleteFaceoff)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/teams/:teamId", analyticsHandler.GetTeamAnalytics)
		analytics.GET("/teams/:teamId/players", analyticsHandler.GetTeamPlayerAnalytics)
		analytics.GET("/games/:gameId", analyticsHandler.GetGameAnalytics)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router, nil
}
