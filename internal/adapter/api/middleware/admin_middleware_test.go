package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbogamarket/internal/adapter/api/middleware"
	"mbogamarket/pkg/errors"
)

type stubAdminRepo struct {
	isAdmin func(ctx context.Context, userID string) (bool, error)
}

func (s *stubAdminRepo) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.isAdmin(ctx, userID)
}

func newAdminContext(uid string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/vendors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if uid != "" {
		c.Set("uid", uid)
	}
	return c
}

func TestAdminOnlyMissingSession(t *testing.T) {
	m := middleware.NewAdminMiddleware(&stubAdminRepo{
		isAdmin: func(ctx context.Context, userID string) (bool, error) {
			t.Fatal("lookup must not run without a session")
			return false, nil
		},
	})

	called := false
	err := m.AdminOnly(nextRecorder(&called))(newAdminContext(""))
	requireHTTPStatus(t, err, http.StatusUnauthorized)
	assert.False(t, called)
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	m := middleware.NewAdminMiddleware(&stubAdminRepo{
		isAdmin: func(ctx context.Context, userID string) (bool, error) {
			assert.Equal(t, "uid-1", userID)
			return false, nil
		},
	})

	called := false
	err := m.AdminOnly(nextRecorder(&called))(newAdminContext("uid-1"))
	requireHTTPStatus(t, err, http.StatusForbidden)
	assert.False(t, called)
}

func TestAdminOnlyLookupFailure(t *testing.T) {
	m := middleware.NewAdminMiddleware(&stubAdminRepo{
		isAdmin: func(ctx context.Context, userID string) (bool, error) {
			return false, errors.Network("Failed to check admin status", nil)
		},
	})

	called := false
	err := m.AdminOnly(nextRecorder(&called))(newAdminContext("uid-1"))
	requireHTTPStatus(t, err, http.StatusInternalServerError)
	assert.False(t, called)
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	m := middleware.NewAdminMiddleware(&stubAdminRepo{
		isAdmin: func(ctx context.Context, userID string) (bool, error) {
			return true, nil
		},
	})

	called := false
	err := m.AdminOnly(nextRecorder(&called))(newAdminContext("uid-1"))
	require.NoError(t, err)
	assert.True(t, called)
}
