package menu

import (
	"errors"
	"strings"

	"healingcook-backend/internal/audit"
	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateMenuRequest struct {
	Name      string `json:"name"`
	ShelfLife int    `json:"shelfLife"`
	IsActive  *bool  `json:"isActive"`
}

type UpdateMenuRequest struct {
	Name      string `json:"name"`
	ShelfLife int    `json:"shelfLife"`
	IsActive  bool   `json:"isActive"`
}

// GET /api/menus - 소속 지점 메뉴 + 전 지점(힐링쿡) 메뉴
func ListMenusHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		menus, err := st.GetMenus(c.Context(), branch)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "메뉴를 불러올 수 없습니다")
		}

		return c.JSON(menus)
	}
}

// POST /api/menus - 매니저 전용. 메뉴의 지점은 작성자의 소속 지점을 따른다
// (힐링쿡 소속 매니저가 만들면 전 지점 메뉴가 됨)
func CreateMenuHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		var body CreateMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "메뉴명은 비워둘 수 없습니다")
		}
		if body.ShelfLife <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "유통기한은 1일 이상이어야 합니다")
		}
		if !models.IsValidMenuBranch(branch) {
			return fiber.NewError(fiber.StatusBadRequest, "지점 값이 올바르지 않습니다")
		}

		isActive := true
		if body.IsActive != nil {
			isActive = *body.IsActive
		}

		menu := models.Menu{
			Name:      body.Name,
			Branch:    branch,
			ShelfLife: body.ShelfLife,
			IsActive:  isActive,
		}

		created, err := st.AddMenu(c.Context(), menu)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "메뉴를 생성할 수 없습니다")
		}

		writeMenuAudit(c, st, models.AuditActionCreate, created.ID, "메뉴 생성: "+created.Name, nil, created)

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// PUT /api/menus/:id - 매니저 전용. 부분 병합이 아니라 전체 교체
func UpdateMenuHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var body UpdateMenuRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "메뉴명은 비워둘 수 없습니다")
		}
		if body.ShelfLife <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "유통기한은 1일 이상이어야 합니다")
		}

		// 이전 상태는 감사 로그용으로만 조회
		var before *models.Menu
		if menus, err := st.GetMenus(c.Context(), branch); err == nil {
			for i := range menus {
				if menus[i].ID == id {
					before = &menus[i]
					break
				}
			}
		}
		if before == nil {
			return fiber.NewError(fiber.StatusNotFound, "메뉴를 찾을 수 없습니다")
		}

		menu := models.Menu{
			ID:        id,
			Name:      body.Name,
			Branch:    before.Branch, // 지점은 변경 불가
			ShelfLife: body.ShelfLife,
			IsActive:  body.IsActive,
		}

		updated, err := st.UpdateMenu(c.Context(), menu)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "메뉴를 찾을 수 없습니다")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "메뉴를 수정할 수 없습니다")
		}

		writeMenuAudit(c, st, models.AuditActionUpdate, updated.ID, "메뉴 수정: "+updated.Name, before, updated)

		return c.JSON(updated)
	}
}

// DELETE /api/menus/:id - 매니저 전용. 이미 없어도 성공으로 처리
func DeleteMenuHandler(st store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		branch, err := auth.BranchFromCtx(c)
		if err != nil {
			return err
		}

		id := c.Params("id")

		var before *models.Menu
		if menus, err := st.GetMenus(c.Context(), branch); err == nil {
			for i := range menus {
				if menus[i].ID == id {
					before = &menus[i]
					break
				}
			}
		}

		if err := st.DeleteMenu(c.Context(), id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "메뉴를 삭제할 수 없습니다")
		}

		if before != nil {
			writeMenuAudit(c, st, models.AuditActionDelete, id, "메뉴 삭제: "+before.Name, before, nil)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func writeMenuAudit(c *fiber.Ctx, st store.Store, action models.AuditAction, entityID, desc string, before, after any) {
	branch, _ := c.Locals(auth.CtxBranchKey).(models.BranchName)
	uid, _ := c.Locals(auth.CtxUserUIDKey).(string)
	name, _ := c.Locals(auth.CtxUserNameKey).(string)

	// 감사 로그 실패가 본 작업을 막지는 않는다
	_ = audit.WriteLog(c.Context(), st, audit.LogOptions{
		Branch:      branch,
		UserUID:     uid,
		UserName:    name,
		EntityType:  "menu",
		EntityID:    entityID,
		Action:      action,
		Description: desc,
		Before:      before,
		After:       after,
	})
}
