package middleware

import (
	"net/http"
	"strings"

	"sku-service/pkg/jwtutil"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token and extracts tenant information
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		if claims.TenantID == uuid.Nil {
			log.Warn("JWT token does not contain tenant_id")
			prometheus.TenantContextMissingCounter.Inc()
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id is required in the token"})
		}

		// An explicit X-Tenant-Id header must agree with the token; a
		// mismatch means the client is trying to act on another tenant.
		if header := c.Request().Header.Get("X-Tenant-Id"); header != "" && header != claims.TenantID.String() {
			log.Warn("Tenant mismatch between header and token",
				zap.String("header_tenant_id", header),
				zap.String("token_tenant_id", claims.TenantID.String()))
			return c.JSON(http.StatusForbidden, echo.Map{"error": "tenant mismatch"})
		}

		// Store user info in context for later use
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("tenant_id", claims.TenantID)
		c.Set("tenant_name", claims.TenantName)

		log.Debug("Request authenticated with tenant context",
			zap.String("tenant_id", claims.TenantID.String()),
			zap.String("email", claims.Email))

		return next(c)
	}
}

// GetTenantIDFromContext retrieves the tenant ID from the context
func GetTenantIDFromContext(c echo.Context) (uuid.UUID, bool) {
	tenantID, ok := c.Get("tenant_id").(uuid.UUID)
	return tenantID, ok
}

// GetUserIDFromContext retrieves the user ID from the context
func GetUserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	return userID, ok
}
