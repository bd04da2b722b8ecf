package handler

import (
	"net/http"
	"time"

	"sku-service/internal/middleware"
	"sku-service/internal/model"
	"sku-service/pkg/database"
	"sku-service/pkg/jwtutil"
	"sku-service/pkg/logger"
	"sku-service/prometheus"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates a user and issues a JWT carrying the user's
// tenant identity. Every subsequent tenant-scoped call derives its
// tenant exclusively from this token.
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.AuthAttemptsCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	result := database.GetDB().Where("email = ?", req.Email).First(&user)
	if result.Error != nil {
		log.Warn("User not found", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_not_found")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		prometheus.RecordAuthError("invalid_password")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	if !user.IsActive {
		log.Warn("Inactive user attempted login", zap.String("email", req.Email))
		prometheus.RecordAuthError("user_inactive")
		return c.JSON(http.StatusForbidden, echo.Map{"error": "user is inactive"})
	}

	var tenant model.Tenant
	if result := database.GetDB().Select("name").First(&tenant, "id = ?", user.TenantID); result.Error != nil {
		log.Error("Tenant lookup failed", zap.String("tenant_id", user.TenantID.String()), zap.Error(result.Error))
		prometheus.RecordAuthError("tenant_not_found")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "tenant lookup failed"})
	}

	token, err := jwtutil.GenerateToken(user.Email, user.ID, user.TenantID, tenant.Name)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		prometheus.RecordAuthError("token_generation_failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token error"})
	}

	log.Info("User logged in",
		zap.String("email", user.Email),
		zap.String("tenant_id", user.TenantID.String()),
		zap.String("tenant_name", tenant.Name))

	return c.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user": echo.Map{
			"id":    user.ID,
			"email": user.Email,
		},
		"tenant": echo.Map{
			"id":   user.TenantID,
			"name": tenant.Name,
		},
	})
}

// Me returns the identity carried by the caller's token, letting
// clients confirm which user and tenant their requests are scoped to.
func Me(c echo.Context) error {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing user context"})
	}
	tenantID, ok := middleware.GetTenantIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing tenant context"})
	}
	email, _ := c.Get("email").(string)
	tenantName, _ := c.Get("tenant_name").(string)

	return c.JSON(http.StatusOK, echo.Map{
		"user": echo.Map{
			"id":    userID,
			"email": email,
		},
		"tenant": echo.Map{
			"id":   tenantID,
			"name": tenantName,
		},
	})
}

// RegisterUser creates a user inside an existing tenant. This is
// bootstrap glue for operators, not a public signup flow.
func RegisterUser(c echo.Context) error {
	log := logger.FromContext(c)

	var req struct {
		Email    string    `json:"email"`
		Password string    `json:"password"`
		TenantID uuid.UUID `json:"tenant_id"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}
	if req.Email == "" || req.Password == "" || req.TenantID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email, password and tenant_id are required"})
	}

	var tenant model.Tenant
	if result := database.GetDB().First(&tenant, "id = ?", req.TenantID); result.Error != nil {
		log.Warn("Registration for unknown tenant", zap.String("tenant_id", req.TenantID.String()))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant does not exist"})
	}

	var count int64
	database.GetDB().Model(&model.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("Failed to hash password", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	user := model.User{
		ID:             uuid.New(),
		Email:          req.Email,
		HashedPassword: string(hashed),
		TenantID:       req.TenantID,
		IsActive:       true,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&user); result.Error != nil {
		log.Error("Failed to create user", zap.String("email", req.Email), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	log.Info("User registered",
		zap.String("email", user.Email),
		zap.String("tenant_id", user.TenantID.String()))
	return c.JSON(http.StatusCreated, user)
}
