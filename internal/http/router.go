// Package http assembles the gin engine serving the storefront and admin APIs.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/config"
	"github.com/ocevave/ocevave/internal/http/api"
	"github.com/ocevave/ocevave/internal/http/api/admin"
	"github.com/ocevave/ocevave/internal/http/api/front"
	log "github.com/sirupsen/logrus"
)

// NewEngine builds the gin engine with the shared middleware chain and all routes.
func NewEngine(cfg config.ServerConfig, svc api.Services) *gin.Engine {
	engine := gin.New()
	if errProxies := engine.SetTrustedProxies(cfg.TrustedProxies); errProxies != nil {
		log.WithError(errProxies).Warn("invalid trusted proxies, trusting none")
		_ = engine.SetTrustedProxies(nil)
	}
	engine.Use(gin.Recovery(), RequestLogger())
	if cfg.CORS {
		engine.Use(CORSMiddleware())
	}
	engine.Use(NewLoginLimiter(cfg.LoginPerMinute, 0).Middleware())
	engine.Use(svc.Resolver.Middleware())

	front.RegisterFrontRoutes(engine, svc)
	admin.RegisterAdminRoutes(engine, svc)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return engine
}
