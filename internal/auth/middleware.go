package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/payswift/auth-service/pkg/util"
)

const subjectKey = "auth_subject"

// Subject is the decoded token identity attached to the request.
type Subject struct {
	UserID string
	Role   string
}

// AuthMiddleware validates bearer tokens on protected routes.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication. A missing header is unauthorized; a
// present but unusable header or an invalid token is forbidden.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewForbidden("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewForbidden("invalid token")
	}

	c.Locals(subjectKey, &Subject{UserID: claims.Subject, Role: claims.Role})
	return c.Next()
}

// SubjectFromContext retrieves the authenticated identity.
func SubjectFromContext(c *fiber.Ctx) (*Subject, bool) {
	val := c.Locals(subjectKey)
	if val == nil {
		return nil, false
	}
	subject, ok := val.(*Subject)
	return subject, ok
}
