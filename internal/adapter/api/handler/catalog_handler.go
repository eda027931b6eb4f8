package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"mbogamarket/internal/domain/entity"
	"mbogamarket/internal/usecase"
	"mbogamarket/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

func (h *CatalogHandler) GetFeatured(c echo.Context) error {
	featured, err := h.catalogUseCase.GetFeatured(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, featured)
}

func (h *CatalogHandler) ListVegetables(c echo.Context) error {
	query := c.QueryParam("q")

	inStockOnly := false
	if raw := c.QueryParam("in_stock"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err == nil {
			inStockOnly = parsed
		}
	}

	vegetables, err := h.catalogUseCase.Browse(c.Request().Context(), query, inStockOnly)
	if err != nil {
		return response.Error(c, err)
	}

	if vegetables == nil {
		vegetables = []*entity.Vegetable{}
	}

	return response.Success(c, vegetables)
}

func (h *CatalogHandler) GetVegetable(c echo.Context) error {
	id := c.Param("id")

	detail, err := h.catalogUseCase.GetProductDetail(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, detail)
}
