package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"mockmate/interview-prep/internal/config"
	"mockmate/interview-prep/internal/models"
	"mockmate/interview-prep/internal/services"
	"mockmate/interview-prep/pkg/validation"
)

type AuthHandler struct {
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// HandleRegister handles POST /auth/register
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if errs := validation.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	result, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Email already registered",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Registration failed",
		})
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": result.User,
	})
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
		})
	}

	if errs := validation.ValidateStruct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid credentials",
		})
	}

	h.setAuthCookies(c, result.AccessToken, result.RefreshToken)

	return c.JSON(fiber.Map{
		"user": result.User,
	})
}

// HandleRefreshToken handles POST /auth/refresh-token
func (h *AuthHandler) HandleRefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")
	if refreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Refresh token required",
		})
	}

	accessToken, err := h.authService.RefreshAccess(refreshToken)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid refresh token",
		})
	}

	h.setCookie(c, "accessToken", accessToken, h.cfg.Token.AccessCookieAge)

	return c.JSON(fiber.Map{
		"message": "Access token refreshed",
	})
}

// HandleLogout handles POST /auth/logout. Tokens are cleared at the transport
// only; a captured token stays valid until its natural expiry.
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	if c.Cookies("refreshToken") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Refresh token required",
		})
	}

	h.clearCookie(c, "accessToken")
	h.clearCookie(c, "refreshToken")

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	h.setCookie(c, "accessToken", accessToken, h.cfg.Token.AccessCookieAge)
	h.setCookie(c, "refreshToken", refreshToken, h.cfg.Token.RefreshCookieAge)
}

func (h *AuthHandler) setCookie(c *fiber.Ctx, name, value string, maxAge int) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}
