package store

import (
	"context"
	"errors"
	"fmt"

	"healingcook-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostgresStore: GORM 기반 영구 저장 백엔드
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func backendErr(err error) error {
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}

// ----------------------------------------
// 사용자
// ----------------------------------------

func (s *PostgresStore) GetUser(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, backendErr(err)
	}
	return &user, nil
}

func (s *PostgresStore) UpdateUser(ctx context.Context, uid string, upd models.UserUpdate) error {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return backendErr(err)
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return backendErr(err)
	}
	return nil
}

func (s *PostgresStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.UID == "" {
		user.UID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, backendErr(err)
	}
	return user, nil
}

// ----------------------------------------
// 메뉴
// ----------------------------------------

func (s *PostgresStore) GetMenus(ctx context.Context, branch models.BranchName) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.WithContext(ctx).
		Where("branch IN ?", []models.BranchName{models.BranchAll, branch}).
		Find(&menus).Error
	if err != nil {
		return nil, backendErr(err)
	}
	return menus, nil
}

func (s *PostgresStore) AddMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	menu.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&menu).Error; err != nil {
		return models.Menu{}, backendErr(err)
	}
	return menu, nil
}

func (s *PostgresStore) UpdateMenu(ctx context.Context, menu models.Menu) (models.Menu, error) {
	var existing models.Menu
	err := s.db.WithContext(ctx).First(&existing, "id = ?", menu.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Menu{}, ErrNotFound
	}
	if err != nil {
		return models.Menu{}, backendErr(err)
	}

	// 부분 병합이 아니라 통째로 교체
	menu.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(&menu).Error; err != nil {
		return models.Menu{}, backendErr(err)
	}
	return menu, nil
}

func (s *PostgresStore) DeleteMenu(ctx context.Context, id string) error {
	// 대상이 이미 없어도 성공 처리
	if err := s.db.WithContext(ctx).Delete(&models.Menu{}, "id = ?", id).Error; err != nil {
		return backendErr(err)
	}
	return nil
}

// ----------------------------------------
// 생산/재고 로그
// ----------------------------------------

func (s *PostgresStore) GetProductionLogs(ctx context.Context, branch models.BranchName) ([]models.ProductionLog, error) {
	var logs []models.ProductionLog
	err := s.db.WithContext(ctx).
		Where("branch = ?", branch).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, backendErr(err)
	}
	return logs, nil
}

func (s *PostgresStore) AddProductionLog(ctx context.Context, log models.ProductionLog) (models.ProductionLog, error) {
	log.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return models.ProductionLog{}, backendErr(err)
	}
	return log, nil
}

func (s *PostgresStore) GetInventoryLogs(ctx context.Context, branch models.BranchName) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	err := s.db.WithContext(ctx).
		Where("branch = ?", branch).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, backendErr(err)
	}
	return logs, nil
}

func (s *PostgresStore) AddInventoryLog(ctx context.Context, log models.InventoryLog) (models.InventoryLog, error) {
	log.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return models.InventoryLog{}, backendErr(err)
	}
	return log, nil
}

// ----------------------------------------
// 인증 계정
// ----------------------------------------

func (s *PostgresStore) FindAccounts(ctx context.Context, email string) ([]models.AuthAccount, error) {
	var accounts []models.AuthAccount
	err := s.db.WithContext(ctx).Where("email = ?", email).Find(&accounts).Error
	if err != nil {
		return nil, backendErr(err)
	}
	return accounts, nil
}

func (s *PostgresStore) CreateAccount(ctx context.Context, acc models.AuthAccount) (models.AuthAccount, error) {
	if acc.UID == "" {
		acc.UID = uuid.NewString()
	}
	if err := s.db.WithContext(ctx).Create(&acc).Error; err != nil {
		return models.AuthAccount{}, backendErr(err)
	}
	return acc, nil
}

// ----------------------------------------
// 감사 로그
// ----------------------------------------

func (s *PostgresStore) AddAuditLog(ctx context.Context, entry models.AuditLog) error {
	entry.ID = uuid.NewString()
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return backendErr(err)
	}
	return nil
}

func (s *PostgresStore) GetAuditLogs(ctx context.Context, branch models.BranchName) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := s.db.WithContext(ctx).
		Where("branch = ?", branch).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, backendErr(err)
	}
	return entries, nil
}
