package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/pos_backend/internal/core/ports/services"
	"github.com/SscSPs/pos_backend/internal/dto"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/SscSPs/pos_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	cookieName   string
	secureCookie bool
}

// newAuthHandler creates a new authHandler
func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		authService:  as,
		cookieName:   cfg.AccessTokenCookieName,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public and authenticated routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService, cfg)
	requireAuth := middleware.AuthMiddleware(cfg.JWTSecret, cfg.AccessTokenCookieName)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/check-auth", h.CheckAuth)
		auth.POST("/password-reset", h.ResetPassword)
		auth.POST("/activate", h.Activate)

		auth.GET("/check/login-id", h.checkAvailability(authService.IsLoginIDTaken))
		auth.GET("/check/phone-number", h.checkAvailability(authService.IsPhoneNumberTaken))
		auth.GET("/check/email", h.checkAvailability(authService.IsEmailTaken))

		auth.POST("/logout", requireAuth, h.Logout)
		auth.POST("/deactivate", requireAuth, h.Deactivate)
	}
}

// Signup godoc
// @Summary Register a new member
// @Description Creates a member account after checking login id, phone number and email are unused.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Login id, phone number or email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/signup [post]
func (h *authHandler) Signup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	member, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to register member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// Login godoc
// @Summary Member login
// @Description Authenticates a member and returns an access token and a refresh token. The access token is also set as a cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Member inactive"
// @Failure 404 {object} ErrorResponse "Unknown login id"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to log in")
		return
	}

	maxAge := int(time.Until(resp.AccessTokenExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, resp.AccessToken, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Member logout
// @Description Revokes the member's refresh token and clears the access token cookie.
// @Tags auth
// @Produce json
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loginID, ok := middleware.GetLoginIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	err := h.authService.Logout(c.Request.Context(), dto.LogoutRequest{LoginID: loginID}, middleware.GetAccessTokenFromContext(c))
	if err != nil {
		respondError(c, logger, err, "Failed to log out")
		return
	}

	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges a live refresh token for a new access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Refresh token expired or invalid"
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) Refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to refresh token")
		return
	}

	maxAge := int(time.Until(resp.AccessTokenExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, resp.AccessToken, maxAge, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, resp)
}

// CheckAuth godoc
// @Summary Verify identity before password reset
// @Description Reports whether the login id and email belong to the same member.
// @Tags auth
// @Accept json
// @Produce json
// @Param check body dto.CheckAuthRequest true "Login id and email"
// @Success 200 {object} dto.CheckAuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/check-auth [post]
func (h *authHandler) CheckAuth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	valid, err := h.authService.CheckAuth(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to check identity")
		return
	}
	c.JSON(http.StatusOK, dto.CheckAuthResponse{Valid: valid})
}

// ResetPassword godoc
// @Summary Reset password
// @Description Stores a new password for the member whose login id and email match.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.PasswordResetRequest true "Login id, email and new password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/password-reset [post]
func (h *authHandler) ResetPassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "Failed to reset password")
		return
	}
	c.Status(http.StatusNoContent)
}

// Activate godoc
// @Summary Reactivate a member
// @Tags auth
// @Accept json
// @Param member body dto.ActivateMemberRequest true "Login id and password"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/activate [post]
func (h *authHandler) Activate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ActivateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.authService.ActivateMember(c.Request.Context(), req); err != nil {
		respondError(c, logger, err, "Failed to activate member")
		return
	}
	c.Status(http.StatusNoContent)
}

// Deactivate godoc
// @Summary Deactivate the calling member
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/deactivate [post]
func (h *authHandler) Deactivate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	loginID, ok := middleware.GetLoginIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.authService.DeactivateMember(c.Request.Context(), dto.MemberActivityRequest{LoginID: loginID}); err != nil {
		respondError(c, logger, err, "Failed to deactivate member")
		return
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}

// checkAvailability godoc
// @Summary Check whether a login id, phone number or email is taken
// @Tags auth
// @Produce json
// @Param value query string true "Value to check"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/check/login-id [get]
// @Router /auth/check/phone-number [get]
// @Router /auth/check/email [get]
func (h *authHandler) checkAvailability(fn func(ctx context.Context, value string) (bool, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		value := c.Query("value")
		if value == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'value' is required"})
			return
		}

		taken, err := fn(c.Request.Context(), value)
		if err != nil {
			respondError(c, logger, err, "Failed to check availability")
			return
		}
		logger.Debug("Availability checked", slog.String("path", c.FullPath()), slog.Bool("taken", taken))
		c.JSON(http.StatusOK, dto.AvailabilityResponse{Value: value, Taken: taken})
	}
}
