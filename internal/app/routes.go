package app

import (
	"github.com/Aruntata-2001/task-manager/internal/auth"
	"github.com/Aruntata-2001/task-manager/internal/cache"
	"github.com/Aruntata-2001/task-manager/internal/config"
	"github.com/Aruntata-2001/task-manager/internal/handlers"
	"github.com/Aruntata-2001/task-manager/internal/repo"
	"github.com/Aruntata-2001/task-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, log *zap.Logger, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	tokens := auth.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration(), cfg.Auth.Issuer)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userSvc, tokens, log)
	registerUserRoutes(api, userHandler)

	protected := api.Group("", auth.RequireUser(tokens))

	taskRepo := repo.NewPGTaskRepo(db)
	taskCache := cache.NewTaskCache(rdb, cfg.Redis.DefaultTTL.Duration())
	taskSvc := service.NewTaskService(taskRepo, taskCache)
	taskHandler := handlers.NewTaskHandler(taskSvc, log)
	registerTaskRoutes(protected, taskHandler)

	textRepo := repo.NewPGUserTextRepo(db)
	textSvc := service.NewUserTextService(textRepo)
	textHandler := handlers.NewUserTextHandler(textSvc, log)
	registerTextRoutes(protected, textHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Task Manager API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"message": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.POST("/users/register", h.Register)
	api.POST("/users/login", h.Login)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/:id", h.GetByID)
	api.PUT("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.PATCH("/tasks/:id/toggle", h.Toggle)
}

func registerTextRoutes(api *gin.RouterGroup, h *handlers.UserTextHandler) {
	api.POST("/text/save", h.Save)
	api.GET("/text/texts", h.List)
}
