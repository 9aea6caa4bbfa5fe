package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"memeboard-api/internal/client"
	"memeboard-api/internal/handler"
	"memeboard-api/internal/metrics"
	"memeboard-api/internal/middleware"
	"memeboard-api/internal/repository"
	"memeboard-api/internal/service"
)

// Config carries the dependencies the router wires together
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	S3Client       client.S3ClientInterface
	Logger         *zap.Logger
	Metrics        *metrics.Metrics
	BasePath       string
	AllowedOrigins []string
}

// Setup builds the gin engine with all routes and middleware
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics))

	// Repositories
	projectRepo := repository.NewProjectRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	mediaRepo := repository.NewMediaRepository(cfg.DB)
	tagRepo := repository.NewTagRepository(cfg.DB)

	// Services
	statsService := service.NewStatsService(projectRepo, cfg.Redis, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, mediaRepo, tagRepo, statsService, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, projectRepo, cfg.Metrics, cfg.Logger)
	mediaService := service.NewMediaService(mediaRepo, projectRepo, cfg.S3Client, cfg.Metrics, cfg.Logger)
	tagService := service.NewTagService(tagRepo, cfg.Logger)

	// Handlers
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	statsHandler := handler.NewStatsHandler(statsService)
	tagHandler := handler.NewTagHandler(tagService)

	healthCheck := healthHandler(cfg.DB, cfg.Redis)
	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	{
		api.GET("/health", healthCheck)

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PATCH("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.ArchiveProject)
			projects.POST("/:id/launch", projectHandler.CompleteLaunch)
			projects.PATCH("/:id/pnl", projectHandler.UpdatePnl)
			projects.PUT("/:id/tags", projectHandler.ReplaceTags)
			projects.GET("/:id/tweets", projectHandler.GetTweets)
			projects.POST("/:id/tweets", projectHandler.CreateTweet)
			projects.DELETE("/:id/tweets/:tweetId", projectHandler.DeleteTweet)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.GetTasks)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		media := api.Group("/media")
		{
			media.POST("/presigned-url", mediaHandler.GeneratePresignedURL)
			media.POST("", mediaHandler.CreateMedia)
			media.GET("", mediaHandler.GetMedia)
			media.PATCH("/:id", mediaHandler.UpdateMedia)
			media.DELETE("/:id", mediaHandler.DeleteMedia)
		}

		tags := api.Group("/tags")
		{
			tags.POST("", tagHandler.CreateTag)
			tags.GET("", tagHandler.GetTags)
		}

		api.GET("/stats", statsHandler.GetStats)
	}

	return r
}

// healthHandler reports liveness plus dependency health. A missing
// redis client is healthy; caching is optional.
func healthHandler(db *gorm.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		overall := "ok"
		dbStatus := "up"

		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			dbStatus = "down"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		cacheStatus := "disabled"
		if redisClient != nil {
			cacheStatus = "up"
			if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
				cacheStatus = "down"
			}
		}

		c.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"cache":    cacheStatus,
		})
	}
}
