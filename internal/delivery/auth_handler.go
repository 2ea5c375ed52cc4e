package delivery

import (
	"errors"
	"net/http"

	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const adminSessionMaxAge = 24 * 60 * 60

type AuthHandler struct {
	useCase usecase.AuthUseCase
	log     *logrus.Logger
}

func NewAuthHandler(uc usecase.AuthUseCase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes mounts /auth. loginLimit, when given, runs before the login handler.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter, loginLimit ...gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", append(loginLimit, h.Login)...)
		auth.POST("/logout", h.Logout)
	}
}

// Login sets the adminAuth and adminUser cookies on success. Neither is
// HttpOnly; the storefront pages read them from script.
func (h *AuthHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")
	var req validation.Login
	if err := bindJSON(c, &req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		respondError(c, handlerLogger, err)
		return
	}

	admin, err := h.useCase.Login(req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondError(c, handlerLogger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminAuthCookie, "true", adminSessionMaxAge, "/", "", false, false)
	c.SetCookie(AdminUserCookie, admin.Username, adminSessionMaxAge, "/", "", false, false)
	handlerLogger.Infof("Admin %s logged in", admin.Username)
	c.JSON(http.StatusOK, gin.H{"ok": true, "username": admin.Username})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AdminAuthCookie, "", -1, "/", "", false, false)
	c.SetCookie(AdminUserCookie, "", -1, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
