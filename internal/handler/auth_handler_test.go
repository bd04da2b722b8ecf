package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	tenantID := uuid.New()
	c.Set("user_id", userID)
	c.Set("email", "ops@example.com")
	c.Set("tenant_id", tenantID)
	c.Set("tenant_name", "Acme Foods")

	require.NoError(t, Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, userID.String())
	assert.Contains(t, body, tenantID.String())
	assert.Contains(t, body, "ops@example.com")
	assert.Contains(t, body, "Acme Foods")
}

func TestMeWithoutAuthContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, Me(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
