package production

import (
	"time"

	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type LogEntry struct {
	MenuID   string  `json:"menu_id"`
	Quantity float64 `json:"quantity"`
}

type CreateLogsRequest struct {
	Entries []LogEntry `json:"entries"`
}

// GET /api/production-logs - 소속 지점 생산 기록 전체 (최신순)
func ListLogsHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		logs, err := st.GetProductionLogs(c.Context(), branch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "생산 기록을 불러올 수 없습니다")
		}

		return c.JSON(logs)
	}
}

// POST /api/production-logs - 일괄 입력. 항목별로 메뉴명 스냅샷과 폐기 예정일을
// 서버에서 계산해 동시에 저장하고, 전부 끝날 때까지 기다린다.
// 하나라도 실패하면 전체 실패로 응답한다 (이미 저장된 항목은 되돌리지 않음)
func CreateLogsHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}
		author, _ := c.Locals(auth.CtxUserNameKey).(string)
		if author == "" {
			author = "Unknown"
		}

		var body CreateLogsRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}
		if len(body.Entries) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "저장할 항목이 없습니다")
		}

		menus, err := st.GetMenus(c.Context(), branch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "메뉴를 불러올 수 없습니다")
		}
		menuByID := make(map[string]models.Menu, len(menus))
		for _, m := range menus {
			menuByID[m.ID] = m
		}

		now := time.Now()

		logs := make([]models.ProductionLog, 0, len(body.Entries))
		for _, entry := range body.Entries {
			menu, ok := menuByID[entry.MenuID]
			if !ok || !menu.IsActive {
				// 알 수 없거나 비활성화된 메뉴는 건너뛴다
				continue
			}
			if entry.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "수량은 0 이상이어야 합니다")
			}

			logs = append(logs, models.ProductionLog{
				Branch:     branch,
				MenuID:     menu.ID,
				MenuName:   menu.Name, // 작성 시점 스냅샷
				Quantity:   entry.Quantity,
				Author:     author,
				Timestamp:  now,
				ExpiryDate: menu.ExpiryFrom(now),
			})
		}

		if len(logs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "유효한 항목이 없습니다")
		}

		created := make([]models.ProductionLog, len(logs))
		g, gctx := errgroup.WithContext(c.Context())
		for i, log := range logs {
			g.Go(func() error {
				saved, err := st.AddProductionLog(gctx, log)
				if err != nil {
					return err
				}
				created[i] = saved
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "생산 기록 저장에 실패했습니다")
		}

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}
