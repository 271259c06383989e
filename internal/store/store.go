package store

import (
	"context"
	"errors"

	"healingcook-backend/internal/models"
)

var (
	// ErrNotFound: id로 참조한 레코드가 없음 (업데이트 대상 등)
	ErrNotFound = errors.New("대상 레코드를 찾을 수 없습니다")

	// ErrBackendUnavailable: 저장소/전송 계층 장애. 원인 에러를 감싸서 반환한다
	ErrBackendUnavailable = errors.New("저장소에 접근할 수 없습니다")
)

// Store: 모든 저장 백엔드가 동일하게 구현해야 하는 서비스 계약.
// PostgresStore와 MemoryStore 두 구현이 있고, 같은 호출 순서에 대해
// 동일하게 동작해야 한다 (공용 계약 테스트가 양쪽에 그대로 돌아감).
type Store interface {
	// GetUser: 없으면 (nil, nil). 정상적인 uid에 대해 에러를 내지 않는다
	GetUser(ctx context.Context, uid string) (*models.User, error)
	// UpdateUser: nil이 아닌 필드만 병합. uid가 없으면 ErrNotFound
	UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) error

	// GetMenus: branch가 일치하거나 힐링쿡(전 지점)인 메뉴의 합집합. 순서 보장 없음
	GetMenus(ctx context.Context, branch models.BranchName) ([]models.Menu, error)
	// AddMenu: 새 id를 발급해 전체 레코드를 돌려준다
	AddMenu(ctx context.Context, menu models.Menu) (models.Menu, error)
	// UpdateMenu: menu.ID 위치의 레코드를 통째로 교체. 없으면 ErrNotFound
	UpdateMenu(ctx context.Context, menu models.Menu) (models.Menu, error)
	// DeleteMenu: 이미 없어도 에러 없이 성공
	DeleteMenu(ctx context.Context, id string) error

	// 로그는 지점 정확히 일치만 (전 지점 개념 없음), timestamp 내림차순.
	// 스냅샷(menuName)과 expiryDate 계산은 호출자 책임이며 받은 값을 그대로 저장한다
	GetProductionLogs(ctx context.Context, branch models.BranchName) ([]models.ProductionLog, error)
	AddProductionLog(ctx context.Context, log models.ProductionLog) (models.ProductionLog, error)
	GetInventoryLogs(ctx context.Context, branch models.BranchName) ([]models.InventoryLog, error)
	AddInventoryLog(ctx context.Context, log models.InventoryLog) (models.InventoryLog, error)

	// 인증/시딩용
	FindAccounts(ctx context.Context, email string) ([]models.AuthAccount, error)
	CreateAccount(ctx context.Context, acc models.AuthAccount) (models.AuthAccount, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	AddAuditLog(ctx context.Context, entry models.AuditLog) error
	GetAuditLogs(ctx context.Context, branch models.BranchName) ([]models.AuditLog, error)
}
