package dashboard

import (
	"time"

	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

type SummaryResponse struct {
	Branch models.BranchName `json:"branch"`
	// 오늘 총 생산량
	TodayProduction float64 `json:"today_production"`
	// 누적 재고 기록 건수
	InventoryLogCount int        `json:"inventory_log_count"`
	Recent            []Activity `json:"recent"`
}

// GET /api/dashboard/summary
func SummaryHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		var (
			prodLogs []models.ProductionLog
			invLogs  []models.InventoryLog
		)

		// 두 로그 조회는 병렬로
		g, gctx := errgroup.WithContext(c.Context())
		g.Go(func() error {
			var err error
			prodLogs, err = st.GetProductionLogs(gctx, branch)
			return err
		})
		g.Go(func() error {
			var err error
			invLogs, err = st.GetInventoryLogs(gctx, branch)
			return err
		})
		if err := g.Wait(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "대시보드 데이터를 불러올 수 없습니다")
		}

		return c.JSON(SummaryResponse{
			Branch:            branch,
			TodayProduction:   TodayProduction(prodLogs, time.Now()),
			InventoryLogCount: len(invLogs),
			Recent:            RecentActivities(prodLogs, invLogs),
		})
	}
}
