package models

import "time"

// ProductionLog: 생산 기록. 추가만 가능, 수정/삭제 없음
type ProductionLog struct {
	ID       string     `gorm:"primaryKey;size:36" json:"id"`
	Branch   BranchName `gorm:"size:50;index;not null" json:"branch"`
	MenuID   string     `gorm:"size:36;index;not null" json:"menuId"`
	MenuName string     `gorm:"size:100;not null" json:"menuName"` // 작성 시점 메뉴명 스냅샷 (이후 메뉴명 변경과 무관)
	Quantity float64    `gorm:"not null" json:"quantity"`
	Author   string     `gorm:"size:100" json:"author"` // 작성자 이름
	// 생산 일시
	Timestamp  time.Time `gorm:"index;not null" json:"timestamp"`
	ExpiryDate time.Time `gorm:"not null" json:"expiryDate"` // 폐기 예정일 (생산 일시 + 유통기한)
}
