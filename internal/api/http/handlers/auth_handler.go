package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ThellaPrasanthi/complain-system/internal/api/dto"
	"github.com/ThellaPrasanthi/complain-system/internal/service"
	apperrors "github.com/ThellaPrasanthi/complain-system/pkg/util"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewMalformedRequest("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewMalformedRequest("username and password required", nil)
	}

	token, role, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token, Role: string(role)})
}
