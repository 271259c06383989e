package auth

import (
	"fmt"
	"strings"

	"healingcook-backend/internal/config"
	"healingcook-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserUIDKey  = "user_uid"
	CtxUserNameKey = "user_name"
	CtxUserRoleKey = "user_role"
	CtxBranchKey   = "branch"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization 헤더가 없습니다")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization 형식은 'Bearer <token>'이어야 합니다")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("잘못된 서명 방식")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "유효하지 않거나 만료된 토큰입니다")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "토큰을 해석할 수 없습니다")
		}

		c.Locals(CtxUserUIDKey, claims.UID)
		c.Locals(CtxUserNameKey, claims.Name)
		c.Locals(CtxUserRoleKey, claims.Role)
		c.Locals(CtxBranchKey, claims.Branch)

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxUserRoleKey)
		role, ok := roleVal.(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "권한 정보를 확인할 수 없습니다")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "이 작업을 수행할 권한이 없습니다")
	}
}

// BranchFromCtx: JWT에서 넣어둔 지점. 모든 조회/기록은 이 값으로만 스코프한다
func BranchFromCtx(c *fiber.Ctx) (models.BranchName, error) {
	branchVal := c.Locals(CtxBranchKey)
	branch, ok := branchVal.(models.BranchName)
	if !ok || branch == "" {
		return "", fiber.NewError(fiber.StatusForbidden, "지점 정보를 확인할 수 없습니다")
	}
	return branch, nil
}
