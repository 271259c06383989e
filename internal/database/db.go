package database

import (
	"log"

	"healingcook-backend/internal/config"
	"healingcook-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("데이터베이스에 연결할 수 없습니다: %v", err)
	}

	err = DB.AutoMigrate(
		&models.AuthAccount{},
		&models.User{},
		&models.Menu{},
		&models.ProductionLog{},
		&models.InventoryLog{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate 실패: %v", err)
	}

	log.Println("데이터베이스 연결 완료. 마이그레이션 적용됨.")
}
