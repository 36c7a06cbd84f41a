package app

import (
	"time"

	"github.com/rithvikm007/Todo/internal/config"
	"github.com/rithvikm007/Todo/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// App owns the configured router. All state is in-memory and lives inside
// the stores wired up in Setup, so there is nothing to close on shutdown.
type App struct {
	cfg    config.Config
	router *gin.Engine
}

func New(cfg config.Config) *App {
	return &App{cfg: cfg, router: newRouter(cfg)}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func newRouter(cfg config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(metrics.Middleware())

	Setup(r, cfg)
	return r
}
