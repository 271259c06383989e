package models

import "time"

type UserRole string

const (
	RoleManager UserRole = "매니저"
	RoleStaff   UserRole = "직원"
)

// User: 프로필 문서. 인증 정보는 AuthAccount에 별도 보관
type User struct {
	UID        string     `gorm:"primaryKey;size:36" json:"uid"`
	EmployeeID string     `gorm:"size:50;index;not null" json:"employee_id"` // 사번
	Name       string     `gorm:"size:100" json:"name"`
	Email      string     `gorm:"size:100;index" json:"email"`
	Branch     BranchName `gorm:"size:50" json:"branch"`
	Role       UserRole   `gorm:"size:20" json:"role"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UserUpdate: 부분 업데이트. nil인 필드는 건드리지 않는다
type UserUpdate struct {
	Name *string `json:"name"`
}
