package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"healingcook-backend/internal/models"

	"github.com/google/uuid"
)

// MemoryStore: 인메모리 백엔드. 개발/테스트용.
// 전역 변수가 아니라 인스턴스가 컬렉션을 직접 소유하므로
// 테스트 인스턴스끼리 데이터가 섞이지 않는다.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[string]models.User
	accounts map[string]models.AuthAccount
	menus    map[string]models.Menu

	productionLogs []models.ProductionLog
	inventoryLogs  []models.InventoryLog
	auditLogs      []models.AuditLog
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		accounts: make(map[string]models.AuthAccount),
		menus:    make(map[string]models.Menu),
	}
}

// ----------------------------------------
// 사용자
// ----------------------------------------

func (s *MemoryStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[uid]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[uid]
	if !ok {
		return ErrNotFound
	}
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	s.users[uid] = user
	return nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.UID == "" {
		user.UID = uuid.NewString()
	}
	s.users[user.UID] = user
	return user, nil
}

// ----------------------------------------
// 메뉴
// ----------------------------------------

func (s *MemoryStore) GetMenus(ctx context.Context, branch models.BranchName) ([]models.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	menus := make([]models.Menu, 0)
	for _, m := range s.menus {
		if m.Branch == models.BranchAll || m.Branch == branch {
			menus = append(menus, m)
		}
	}
	return menus, nil
}

func (s *MemoryStore) AddMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	menu.ID = uuid.NewString()
	s.menus[menu.ID] = menu
	return menu, nil
}

func (s *MemoryStore) UpdateMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menus[menu.ID]; !ok {
		return models.Menu{}, ErrNotFound
	}
	s.menus[menu.ID] = menu
	return menu, nil
}

func (s *MemoryStore) DeleteMenu(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 이미 없으면 그대로 성공
	delete(s.menus, id)
	return nil
}

// ----------------------------------------
// 생산/재고 로그
// ----------------------------------------

func (s *MemoryStore) GetProductionLogs(ctx context.Context, branch models.BranchName) ([]models.ProductionLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]models.ProductionLog, 0)
	for _, l := range s.productionLogs {
		if l.Branch == branch {
			logs = append(logs, l)
		}
	}
	// 계약상 최신순이 보장되어야 하므로 반환 전에 정렬
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}

func (s *MemoryStore) AddProductionLog(ctx context.Context, log models.ProductionLog) (models.ProductionLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = uuid.NewString()
	s.productionLogs = append(s.productionLogs, log)
	return log, nil
}

func (s *MemoryStore) GetInventoryLogs(ctx context.Context, branch models.BranchName) ([]models.InventoryLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logs := make([]models.InventoryLog, 0)
	for _, l := range s.inventoryLogs {
		if l.Branch == branch {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}

func (s *MemoryStore) AddInventoryLog(ctx context.Context, log models.InventoryLog) (models.InventoryLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.ID = uuid.NewString()
	s.inventoryLogs = append(s.inventoryLogs, log)
	return log, nil
}

// ----------------------------------------
// 인증 계정
// ----------------------------------------

func (s *MemoryStore) FindAccounts(ctx context.Context, email string) ([]models.AuthAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.AuthAccount, 0)
	for _, a := range s.accounts {
		if a.Email == email {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (s *MemoryStore) CreateAccount(ctx context.Context, acc models.AuthAccount) (models.AuthAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if acc.UID == "" {
		acc.UID = uuid.NewString()
	}
	s.accounts[acc.UID] = acc
	return acc, nil
}

// ----------------------------------------
// 감사 로그
// ----------------------------------------

func (s *MemoryStore) AddAuditLog(ctx context.Context, entry models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		// gorm이 Create 시점에 채워주는 것과 동일하게
		entry.CreatedAt = time.Now()
	}
	s.auditLogs = append(s.auditLogs, entry)
	return nil
}

func (s *MemoryStore) GetAuditLogs(ctx context.Context, branch models.BranchName) ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.AuditLog, 0)
	for _, e := range s.auditLogs {
		if e.Branch == branch {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}
