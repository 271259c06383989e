package models

import "time"

// InventoryLog: 재고 마감 기록. 추가만 가능
type InventoryLog struct {
	ID       string     `gorm:"primaryKey;size:36" json:"id"`
	Branch   BranchName `gorm:"size:50;index;not null" json:"branch"`
	MenuID   string     `gorm:"size:36;index;not null" json:"menuId"`
	MenuName string     `gorm:"size:100;not null" json:"menuName"` // 작성 시점 메뉴명 스냅샷
	Quantity float64    `gorm:"not null" json:"quantity"`
	Author   string     `gorm:"size:100" json:"author"`
	// 마감 일시
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}
