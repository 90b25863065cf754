package serverutils

import (
	"errors"
	"strings"

	"portfolio-be/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

var errBadSigningMethod = errors.New("unexpected signing method")

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(secret, tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errBadSigningMethod
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if _, ok := claims["user_id"].(string); !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return authHeader[7:]
}

func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := BearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid token"))
		}

		ctx.Locals(LocalUserID, claims["user_id"])
		ctx.Locals(LocalRole, claims["role"])
		return ctx.Next()
	}
}

// RequireAdmin must run after the JWT middleware.
func RequireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals(LocalRole).(string)
	if role != string(entity.OwnerRoleAdmin) {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Admins only"))
	}
	return ctx.Next()
}
