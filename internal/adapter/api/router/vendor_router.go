package router

import (
	"github.com/labstack/echo/v4"

	"mbogamarket/internal/adapter/api/handler"
	"mbogamarket/internal/adapter/api/middleware"
)

func SetupVendorRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	vendorHandler := handler.GetVendorHandler()

	vendor := e.Group("/v1/vendor")
	vendor.Use(authMiddleware.Authenticate)
	vendor.GET("", vendorHandler.GetProfile)
	vendor.PUT("", vendorHandler.UpdateProfile)
	vendor.GET("/subscription", vendorHandler.GetSubscription)
	vendor.GET("/vegetables", vendorHandler.ListMyVegetables)
	vendor.POST("/vegetables", vendorHandler.CreateVegetable)
	vendor.PUT("/vegetables/:id", vendorHandler.UpdateVegetable)
	vendor.DELETE("/vegetables/:id", vendorHandler.DeleteVegetable)
}
