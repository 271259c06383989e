package production

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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
	protected.Get("/api/production-logs", ListLogsHandler(st))
	protected.Post("/api/production-logs", CreateLogsHandler(st))
	return app, cfg
}

func tokenFor(t *testing.T, cfg *config.Config, branch models.BranchName) string {
	t.Helper()
	token, err := auth.GenerateToken(cfg.JWTSecret, &models.User{
		UID:        "u1",
		EmployeeID: "staff1",
		Name:       "직원1",
		Branch:     branch,
		Role:       models.RoleStaff,
	})
	require.NoError(t, err)
	return token
}

func TestCreateProductionLogsBatch(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	kimchi, err := st.AddMenu(ctx, models.Menu{Name: "배추김치", Branch: models.BranchAll, ShelfLife: 30, IsActive: true})
	require.NoError(t, err)
	anchovy, err := st.AddMenu(ctx, models.Menu{Name: "멸치볶음", Branch: models.BranchYongho, ShelfLife: 7, IsActive: true})
	require.NoError(t, err)
	inactive, err := st.AddMenu(ctx, models.Menu{Name: "계란말이", Branch: models.BranchYongho, ShelfLife: 1, IsActive: false})
	require.NoError(t, err)

	app, cfg := newTestApp(t, st)
	token := tokenFor(t, cfg, models.BranchYongho)

	body, _ := json.Marshal(CreateLogsRequest{Entries: []LogEntry{
		{MenuID: kimchi.ID, Quantity: 10},
		{MenuID: anchovy.ID, Quantity: 5},
		{MenuID: inactive.ID, Quantity: 99}, // 비활성 메뉴는 건너뜀
		{MenuID: "없는-메뉴", Quantity: 1},      // 알 수 없는 메뉴도 건너뜀
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/production-logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created []models.ProductionLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Len(t, created, 2)

	logs, err := st.GetProductionLogs(ctx, models.BranchYongho)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	for _, l := range logs {
		assert.NotEmpty(t, l.ID)
		assert.Equal(t, models.BranchYongho, l.Branch)
		assert.Equal(t, "직원1", l.Author)

		// 폐기 예정일 = 생산 일시 + 유통기한(달력 일수)
		switch l.MenuID {
		case kimchi.ID:
			assert.Equal(t, "배추김치", l.MenuName)
			assert.Equal(t, l.Timestamp.AddDate(0, 0, 30), l.ExpiryDate)
		case anchovy.ID:
			assert.Equal(t, "멸치볶음", l.MenuName)
			assert.Equal(t, l.Timestamp.AddDate(0, 0, 7), l.ExpiryDate)
		default:
			t.Errorf("예상치 못한 메뉴: %s", l.MenuID)
		}
	}
}

func TestCreateProductionLogsNegativeQuantity(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	m, err := st.AddMenu(ctx, models.Menu{Name: "배추김치", Branch: models.BranchYongho, ShelfLife: 30, IsActive: true})
	require.NoError(t, err)

	app, cfg := newTestApp(t, st)
	token := tokenFor(t, cfg, models.BranchYongho)

	body, _ := json.Marshal(CreateLogsRequest{Entries: []LogEntry{{MenuID: m.ID, Quantity: -1}}})
	req := httptest.NewRequest(http.MethodPost, "/api/production-logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateProductionLogsEmptyBody(t *testing.T) {
	st := store.NewMemoryStore()
	app, cfg := newTestApp(t, st)
	token := tokenFor(t, cfg, models.BranchYongho)

	body, _ := json.Marshal(CreateLogsRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/production-logs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListProductionLogsScopedToBranch(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	now := time.Now()
	_, err := st.AddProductionLog(ctx, models.ProductionLog{
		Branch: models.BranchYongho, MenuID: "m1", MenuName: "배추김치",
		Quantity: 3, Author: "직원1", Timestamp: now, ExpiryDate: now.AddDate(0, 0, 30),
	})
	require.NoError(t, err)
	_, err = st.AddProductionLog(ctx, models.ProductionLog{
		Branch: models.BranchHaeundae, MenuID: "m1", MenuName: "배추김치",
		Quantity: 7, Author: "직원2", Timestamp: now, ExpiryDate: now.AddDate(0, 0, 30),
	})
	require.NoError(t, err)

	app, cfg := newTestApp(t, st)
	token := tokenFor(t, cfg, models.BranchYongho)

	req := httptest.NewRequest(http.MethodGet, "/api/production-logs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []models.ProductionLog
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logs))
	require.Len(t, logs, 1)
	assert.Equal(t, models.BranchYongho, logs[0].Branch)
}
