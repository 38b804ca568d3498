package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/payswift/auth-service/internal/api/dto"
	"github.com/payswift/auth-service/internal/auth"
	"github.com/payswift/auth-service/internal/service"
	apperrors "github.com/payswift/auth-service/pkg/util"
)

// AuthHandler exposes the register, login and token verification endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.auth.Register(c.Context(), service.RegisterInput{
		Name:         req.Name,
		PIN:          req.PIN,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Role:         req.Role,
	}); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	token, _, err := h.auth.Login(c.Context(), req.Identifier, req.PIN)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{
		Message: "Login Successful",
		Token:   token,
	})
}

// VerifyToken handles GET /verifyToken behind the auth middleware.
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	subject, ok := auth.SubjectFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("missing authenticated subject")
	}

	user, err := h.auth.GetUser(c.Context(), subject.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user": dto.NewUserResponse(user),
	})
}
