package app

import (
	"github.com/rithvikm007/Todo/internal/auth"
	"github.com/rithvikm007/Todo/internal/config"
	"github.com/rithvikm007/Todo/internal/handlers"
	"github.com/rithvikm007/Todo/internal/metrics"
	"github.com/rithvikm007/Todo/internal/repo"
	"github.com/rithvikm007/Todo/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine and wires the in-memory
// stores behind them. Each call builds fresh stores, so every process (and
// every test router) starts empty.
func Setup(r *gin.Engine, cfg config.Config) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	tokens := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration())

	userRepo := repo.NewMemoryUserRepo()
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	registerAuthRoutes(r.Group(""), authHandler)

	protected := r.Group("", auth.RequireAuth(tokens))
	taskRepo := repo.NewMemoryTaskRepo()
	taskSvc := service.NewTaskService(taskRepo)
	taskHandler := handlers.NewTaskHandler(taskSvc)
	registerTaskRoutes(protected, taskHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
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
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(g *gin.RouterGroup, h *handlers.AuthHandler) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

func registerTaskRoutes(g *gin.RouterGroup, h *handlers.TaskHandler) {
	g.POST("/todos", h.Create)
	g.GET("/todos", h.List)
	g.GET("/todos/:id", h.GetByID)
	g.PUT("/todos/:id", h.Update)
	g.DELETE("/todos/:id", h.Delete)
}
