package inventory

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

// GET /api/inventory-logs - 소속 지점 재고 마감 기록 전체 (최신순)
func ListLogsHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		logs, err := st.GetInventoryLogs(c.Context(), branch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "재고 기록을 불러올 수 없습니다")
		}

		return c.JSON(logs)
	}
}

// POST /api/inventory-logs - 재고 마감 일괄 입력. 생산 기록과 같은 방식으로
// 동시에 저장하고 하나라도 실패하면 전체 실패로 응답한다
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

		logs := make([]models.InventoryLog, 0, len(body.Entries))
		for _, entry := range body.Entries {
			menu, ok := menuByID[entry.MenuID]
			if !ok || !menu.IsActive {
				continue
			}
			if entry.Quantity < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "수량은 0 이상이어야 합니다")
			}

			logs = append(logs, models.InventoryLog{
				Branch:    branch,
				MenuID:    menu.ID,
				MenuName:  menu.Name, // 작성 시점 스냅샷
				Quantity:  entry.Quantity,
				Author:    author,
				Timestamp: now,
			})
		}

		if len(logs) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "유효한 항목이 없습니다")
		}

		created := make([]models.InventoryLog, len(logs))
		g, gctx := errgroup.WithContext(c.Context())
		for i, log := range logs {
			g.Go(func() error {
				saved, err := st.AddInventoryLog(gctx, log)
				if err != nil {
					return err
				}
				created[i] = saved
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "재고 기록 저장에 실패했습니다")
		}

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}
