package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrbashir/erp-system-sub001/internal/auth"
	"github.com/amrbashir/erp-system-sub001/internal/middleware"
	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// AuthService serves the organization-scoped login/logout endpoints.
type AuthService struct {
	store         storage.Store
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse mirrors the stored session shape: the client persists
// exactly these fields.
type loginResponse struct {
	Username         string      `json:"username"`
	Role             models.Role `json:"role"`
	AccessToken      string      `json:"accessToken"`
	OrganizationSlug string      `json:"organizationSlug"`
}

// Login authenticates a user inside the organization named by the
// path slug. Failures never leak whether the username or the password
// was wrong.
func (s *AuthService) Login(c *gin.Context) {
	slug := c.Param("slug")
	if !models.IsValidSlug(slug) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization slug"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}

	org, err := s.store.GetOrganizationBySlug(c.Request.Context(), slug)
	if err != nil {
		s.logger.Error("Organization lookup failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if org == nil {
		// Indistinguishable from bad credentials on purpose.
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
		return
	}

	user, err := s.authenticator.Authenticate(c.Request.Context(), org.ID, req.Username, req.Password)
	if err != nil {
		s.logger.Warn("Login failed", "org", slug, "username", req.Username, "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	token, err := s.jwtManager.Generate(user, slug)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info("User logged in", "org", slug, "user_id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, loginResponse{
		Username:         user.Username,
		Role:             user.Role,
		AccessToken:      token,
		OrganizationSlug: slug,
	})
}

// Logout terminates the session. Tokens are stateless, so the server
// side only acknowledges; the client discards its stored credentials
// regardless of whether this call ever lands.
func (s *AuthService) Logout(c *gin.Context) {
	s.logger.Info("User logged out", "org", c.Param("slug"), "user_id", middleware.GetUserID(c))
	c.Status(http.StatusNoContent)
}
