package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mbogamarket/internal/domain/repository"
)

type AdminMiddleware struct {
	adminRepo repository.AdminRepository
}

func NewAdminMiddleware(adminRepo repository.AdminRepository) *AdminMiddleware {
	return &AdminMiddleware{
		adminRepo: adminRepo,
	}
}

// AdminOnly gates a route on an existence check in the admins table.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		isAdmin, err := m.adminRepo.IsAdmin(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify admin privileges")
		}
		if !isAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
