package router

import (
	"github.com/labstack/echo/v4"

	"mbogamarket/internal/adapter/api/handler"
	"mbogamarket/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("/vendors", adminHandler.ListVendors)
	admin.DELETE("/vendors/:id", adminHandler.DeleteVendor)
	admin.PUT("/vendors/:id/subscription", adminHandler.SetSubscription)
}
