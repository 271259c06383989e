package auth

import (
	"errors"
	"strings"

	"healingcook-backend/internal/config"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Branch     models.BranchName `json:"branch"`
	EmployeeID string            `json:"employee_id"`
	Password   string            `json:"password"`
}

type UpdateMeRequest struct {
	Name string `json:"name"`
}

func LoginHandler(cfg *config.Config, svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.EmployeeID = strings.TrimSpace(body.EmployeeID)

		user, err := svc.Login(c.Context(), body.Branch, body.EmployeeID, body.Password)
		if err != nil {
			var ve *ValidationError
			switch {
			case errors.As(err, &ve):
				return fiber.NewError(fiber.StatusBadRequest, ve.Msg)
			case errors.Is(err, ErrInvalidCredentials):
				return fiber.NewError(fiber.StatusUnauthorized, err.Error())
			case errors.Is(err, ErrUnauthorizedBranch), errors.Is(err, ErrProfileNotFound):
				return fiber.NewError(fiber.StatusForbidden, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "로그인 중 오류가 발생했습니다")
			}
		}

		token, err := GenerateToken(cfg.JWTSecret, user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "토큰을 생성할 수 없습니다")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}

func MeHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uidVal := c.Locals(CtxUserUIDKey)

		if uid, ok := uidVal.(string); ok && uid != "" {
			user, err := st.GetUser(c.Context(), uid)
			if err == nil && user != nil {
				return c.JSON(user)
			}
		}

		// 프로필 문서가 없으면 토큰 클레임으로 응답 (세션 복원용 최소 정보)
		return c.JSON(fiber.Map{
			"uid":    uidVal,
			"name":   c.Locals(CtxUserNameKey),
			"branch": c.Locals(CtxBranchKey),
			"role":   c.Locals(CtxUserRoleKey),
		})
	}
}

// PUT /api/users/me - 이름만 변경 가능
func UpdateMeHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid, ok := c.Locals(CtxUserUIDKey).(string)
		if !ok || uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "사용자 정보를 확인할 수 없습니다")
		}

		var body UpdateMeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "이름은 비워둘 수 없습니다")
		}

		if err := st.UpdateUser(c.Context(), uid, models.UserUpdate{Name: &body.Name}); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "사용자를 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "프로필 업데이트에 실패했습니다")
		}

		user, err := st.GetUser(c.Context(), uid)
		if err != nil || user == nil {
			return fiber.NewError(fiber.StatusInternalServerError, "프로필 업데이트에 실패했습니다")
		}

		return c.JSON(user)
	}
}
