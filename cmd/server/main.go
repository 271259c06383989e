package main

import (
	"context"
	"log"
	"strings"

	"healingcook-backend/internal/audit"
	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/config"
	"healingcook-backend/internal/dashboard"
	"healingcook-backend/internal/database"
	"healingcook-backend/internal/inventory"
	"healingcook-backend/internal/menu"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/production"
	"healingcook-backend/internal/seed"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	// 저장 백엔드 선택 (postgres | memory). 계약은 동일
	var st store.Store
	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		st = store.NewMemoryStore()
		// 인메모리 백엔드는 매번 비어 있으므로 기본 계정/메뉴를 넣어준다
		if err := seed.Run(context.Background(), st); err != nil {
			log.Fatalf("초기 데이터 생성 실패: %v", err)
		}
	default:
		database.Init(cfg)
		st = store.NewPostgresStore(database.DB)
	}

	// 프로필 문서가 없는 계정은 로그인 실패 처리 (엄격 정책)
	authSvc := auth.NewService(st, false)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("예상치 못한 오류:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "예상치 못한 서버 오류가 발생했습니다",
			})
		},
	})

	// CORS origins: 쉼표 구분 문자열
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/auth/login", auth.LoginHandler(cfg, authSvc))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))
	protected.Put("/users/me", auth.UpdateMeHandler(st))

	// 메뉴 (조회는 전원, 변경은 매니저만)
	protected.Get("/menus", menu.ListMenusHandler(st))

	managerOnly := protected.Group("")
	managerOnly.Use(auth.RequireRole(models.RoleManager))
	managerOnly.Post("/menus", menu.CreateMenuHandler(st))
	managerOnly.Put("/menus/:id", menu.UpdateMenuHandler(st))
	managerOnly.Delete("/menus/:id", menu.DeleteMenuHandler(st))
	managerOnly.Get("/audit-logs", audit.ListAuditLogsHandler(st))

	// 생산 기록
	protected.Get("/production-logs", production.ListLogsHandler(st))
	protected.Post("/production-logs", production.CreateLogsHandler(st))

	// 재고 마감 기록
	protected.Get("/inventory-logs", inventory.ListLogsHandler(st))
	protected.Post("/inventory-logs", inventory.CreateLogsHandler(st))

	// 대시보드
	protected.Get("/dashboard/summary", dashboard.SummaryHandler(st))

	log.Println("서버 실행 중, 포트:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
