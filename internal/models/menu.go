package models

import "time"

type Menu struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Branch    BranchName `gorm:"size:50;index;not null" json:"branch"` // 힐링쿡이면 전 지점 노출
	ShelfLife int        `gorm:"not null" json:"shelfLife"`            // 유통기한 (일)
	IsActive  bool       `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ExpiryFrom: 생산 시점 기준 폐기 예정일.
// 달력 일수 더하기 (서머타임 경계에서도 시각이 밀리지 않도록 AddDate 사용)
func (m Menu) ExpiryFrom(t time.Time) time.Time {
	return t.AddDate(0, 0, m.ShelfLife)
}
