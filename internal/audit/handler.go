package audit

import (
	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

func ListAuditLogsHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		entries, err := st.GetAuditLogs(c.Context(), branch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "감사 로그를 불러올 수 없습니다")
		}

		return c.JSON(entries)
	}
}
