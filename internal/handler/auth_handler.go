package handler

import (
	"net/http"

	"timeshare_manager/internal/middleware"
	"timeshare_manager/internal/model"
	"timeshare_manager/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, logger: logger.Named("AuthHandler")}
}

// statusForOutcome maps a programmatic outcome to an HTTP status code
func statusForOutcome(kind model.Outcome) int {
	switch kind {
	case model.OutcomeOK, model.OutcomeAlreadySeeded:
		return http.StatusOK
	case model.OutcomeInvalidCredential:
		return http.StatusUnauthorized
	case model.OutcomeNotFound:
		return http.StatusNotFound
	case model.OutcomeAlreadyExists:
		return http.StatusConflict
	case model.OutcomeValidationFailed:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *AuthHandler) respond(c *gin.Context, result *model.AuthResult, successStatus int) {
	status := statusForOutcome(result.Kind)
	if result.Succeeded {
		status = successStatus
	}
	c.JSON(status, result)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}
	h.respond(c, result, http.StatusCreated)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to login"})
		return
	}
	h.respond(c, result, http.StatusOK)
}

// grantRole builds a handler granting one specific role
func (h *AuthHandler) grantRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.UpdatePermissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		result, err := h.service.GrantRole(c.Request.Context(), req.Username, role)
		if err != nil {
			h.logger.Error("role grant failed", zap.String("role", string(role)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to grant role"})
			return
		}
		h.respond(c, result, http.StatusOK)
	}
}

func (h *AuthHandler) SeedRoles(c *gin.Context) {
	result, err := h.service.SeedRoles(c.Request.Context())
	if err != nil {
		h.logger.Error("role seeding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed roles"})
		return
	}
	h.respond(c, result, http.StatusOK)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	usernameVal, exists := c.Get(middleware.AuthUsernameKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username not found in context"})
		return
	}
	username, ok := usernameVal.(string)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username type in context"})
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.service.ChangePassword(c.Request.Context(), username, req.OldPassword, req.NewPassword)
	if err != nil {
		h.logger.Error("password change failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	h.respond(c, result, http.StatusOK)
}

// RegisterAuthRoutes registers auth routes. Role grants are restricted to
// admins and owners; password change requires an authenticated caller.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, jwtAuthMW, adminMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/seed-roles", h.SeedRoles)
		authGroup.POST("/change-password", jwtAuthMW, h.ChangePassword)

		authGroup.POST("/make-admin", jwtAuthMW, adminMW, h.grantRole(model.RoleAdmin))
		authGroup.POST("/make-owner", jwtAuthMW, adminMW, h.grantRole(model.RoleOwner))
		authGroup.POST("/make-staff", jwtAuthMW, adminMW, h.grantRole(model.RoleStaff))
	}
}
