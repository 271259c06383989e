package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/config"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, st store.Store) (*fiber.App, *config.Config) {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret-test-secret-test-secret!"}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "서버 오류"})
		},
	})
	protected := app.Group("", auth.JWTMiddleware(cfg))
	protected.Get("/api/inventory-logs", ListLogsHandler(st))
	protected.Post("/api/inventory-logs", CreateLogsHandler(st))
	return app, cfg
}

func TestCreateInventoryLogsBatch(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	kimchi, err := st.AddMenu(ctx, models.Menu{Name: "배추김치", Branch: models.BranchAll, ShelfLife: 30, IsActive: true})
	require.NoError(t, err)
	eggroll, err := st.AddMenu(ctx, models.Menu{Name: "계란말이", Branch: models.BranchHaeundae, ShelfLife: 1, IsActive: true})
	require.NoError(t, err)

	app, cfg := newTestApp(t, st)
	token, err := auth.GenerateToken(cfg.JWTSecret, &models.User{
		UID: "u2", EmployeeID: "staff2", Name: "직원2", Branch: models.BranchHaeundae, Role: models.RoleStaff,
	})
	require.NoError(t, err)

	body, _ := json.Marshal(CreateLogsRequest{Entries: []LogEntry{
		{MenuID: kimchi.ID, Quantity: 4},
		{MenuID: eggroll.ID, Quantity: 0}, // 0개 마감도 유효한 기록
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/inventory-logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	logs, err := st.GetInventoryLogs(ctx, models.BranchHaeundae)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		assert.Equal(t, models.BranchHaeundae, l.Branch)
		assert.Equal(t, "직원2", l.Author)
		assert.NotEmpty(t, l.MenuName)
	}
}
