package admin

import (
	"github.com/gin-gonic/gin"
	"github.com/ocevave/ocevave/internal/http/api"
	"github.com/ocevave/ocevave/internal/http/api/admin/handlers"
)

// RegisterAdminRoutes registers /healthz and the gated /api/admin routes.
// The session resolver must already be installed on r.
func RegisterAdminRoutes(r *gin.Engine, svc api.Services) {
	if r == nil {
		return
	}

	healthHandler := handlers.NewHealthHandler(svc.DB)
	r.GET("/healthz", healthHandler.Healthz)

	admin := r.Group("/api/admin")
	admin.Use(svc.Gate.Middleware(), adminPermissionMiddleware())

	orderHandler := handlers.NewOrderHandler(svc.Orders)
	admin.GET("/orders", orderHandler.List)

	recordHandler := handlers.NewRecordHandler(svc.Records, svc.Accounts)
	admin.GET("/reservations", recordHandler.Reservations)
	admin.GET("/donations", recordHandler.Donations)
	admin.GET("/members", recordHandler.Members)

	productHandler := handlers.NewProductHandler(svc.Catalog)
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	contentHandler := handlers.NewContentHandler(svc.Content)
	admin.POST("/events", contentHandler.CreateEvent)
	admin.DELETE("/events/:id", contentHandler.DeleteEvent)
	admin.POST("/activities", contentHandler.CreateActivity)
	admin.DELETE("/activities/:id", contentHandler.DeleteActivity)
	admin.POST("/crisis-articles", contentHandler.CreateArticle)
	admin.DELETE("/crisis-articles/:id", contentHandler.DeleteArticle)
	admin.PUT("/company-info/:section", contentHandler.UpdateCompanyInfo)

	imageHandler := handlers.NewImageHandler(svc.Images)
	admin.POST("/upload-image", imageHandler.Upload)

	settingsHandler := handlers.NewSettingsHandler(svc.DB)
	admin.GET("/settings", settingsHandler.List)
	admin.PUT("/settings/:key", settingsHandler.Update)
}
