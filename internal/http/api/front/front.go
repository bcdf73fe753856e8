package front

import (
	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/http/api"
	"github.com/ocevave/ocevave/internal/http/api/front/handlers"
)

// RegisterFrontRoutes registers the public storefront routes under /api.
// The session resolver must already be installed on r.
func RegisterFrontRoutes(r *gin.Engine, svc api.Services) {
	if r == nil {
		return
	}

	front := r.Group("/api")

	authHandler := handlers.NewAuthHandler(svc.Accounts, svc.Resolver)
	front.POST("/auth/signup", authHandler.Signup)
	front.POST("/auth/login", authHandler.Login)
	front.POST("/auth/logout", authHandler.Logout)
	front.GET("/auth/me", authHandler.Me)

	front.GET("/config", handlers.GetPublicConfig)

	productHandler := handlers.NewProductHandler(svc.Catalog)
	front.GET("/products", productHandler.List)
	front.GET("/products/:id", productHandler.Get)

	contentHandler := handlers.NewContentHandler(svc.Content)
	front.GET("/events", contentHandler.ListEvents)
	front.GET("/events/:id", contentHandler.GetEvent)
	front.GET("/activities", contentHandler.ListActivities)
	front.GET("/activities/:id", contentHandler.GetActivity)
	front.GET("/crisis-articles", contentHandler.ListArticles)
	front.GET("/company-info", contentHandler.ListCompanyInfo)

	recordHandler := handlers.NewRecordHandler(svc.Records)
	front.POST("/events/reserve", recordHandler.Reserve)
	front.POST("/donations", recordHandler.Donate)

	orderHandler := handlers.NewOrderHandler(svc.Orders)
	front.POST("/orders", orderHandler.Create)
	front.GET("/orders/:orderNumber", orderHandler.Get)

	imageHandler := handlers.NewImageHandler(svc.Images)
	front.GET("/images/:filename", imageHandler.Serve)
}
