package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/api/metrics"
	"github.com/userhub/users-api/internal/core/domain"
	"github.com/userhub/users-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for the session lifecycle.
type AuthHandler struct {
	authService  ports.AuthService
	tokenTTL     time.Duration
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration, secureCookie bool) *AuthHandler {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL, secureCookie: secureCookie}
}

// Register creates a new account and opens a session.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email already in use"})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	c.SetCookie(newSessionCookie(token, h.tokenTTL, h.secureCookie))
	return c.JSON(http.StatusOK, authResponse{Email: user.Email, Username: user.Username})
}

// Login authenticates by email and password and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Email or password incorrect"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "Too many login attempts"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(newSessionCookie(token, h.tokenTTL, h.secureCookie))
	return c.JSON(http.StatusOK, authResponse{Email: user.Email, Username: user.Username})
}

// Logout clears the session cookie. It always succeeds and never inspects the
// prior session: with stateless tokens there is nothing server-side to revoke.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(clearSessionCookie(h.secureCookie))
	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// Verify resolves the session cookie to its account. Missing, invalid, and
// expired tokens (and tokens for deleted users) all produce the same 401.
//
// @Summary      Verify the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  messageResponse
// @Router       /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		metrics.TokenVerificationsTotal.WithLabelValues("unauthorized").Inc()
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
	}

	user, err := h.authService.Verify(c.Request().Context(), cookie.Value)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			metrics.TokenVerificationsTotal.WithLabelValues("unauthorized").Inc()
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthorized"})
		}
		return err
	}

	metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, verifyResponse{
		Message: "User verified",
		User:    authResponse{Email: user.Email, Username: user.Username},
	})
}
