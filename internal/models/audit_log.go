package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog: 메뉴 변경 이력 (누가/무엇을/전후 상태)
type AuditLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Branch BranchName `gorm:"size:50;index" json:"branch"`

	UserUID  string `gorm:"size:36" json:"user_uid"`
	UserName string `gorm:"size:100" json:"user_name"` // 사용자 이름 (스냅샷)

	EntityType string      `gorm:"size:50;index" json:"entity_type"` // 현재는 "menu"만 사용
	EntityID   string      `gorm:"size:36;index" json:"entity_id"`
	Action     AuditAction `gorm:"size:20" json:"action"`

	Description string `gorm:"size:255" json:"description"`

	// 변경 전/후 (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
