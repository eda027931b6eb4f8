package router

import (
	"github.com/labstack/echo/v4"

	"mbogamarket/internal/adapter/api/handler"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	e.GET("/v1/featured", catalogHandler.GetFeatured)

	vegetables := e.Group("/v1/vegetables")
	vegetables.GET("", catalogHandler.ListVegetables)
	vegetables.GET("/:id", catalogHandler.GetVegetable)
}
