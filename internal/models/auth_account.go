package models

import "time"

// AuthAccount: 로그인 자격 증명. 같은 사번이라도 지점이 다르면 별도 계정
// (이메일은 사번으로 합성: <사번>@healingcook.com)
type AuthAccount struct {
	UID          string     `gorm:"primaryKey;size:36" json:"uid"`
	Email        string     `gorm:"size:100;not null;uniqueIndex:idx_auth_accounts_email_branch" json:"email"`
	Branch       BranchName `gorm:"size:50;not null;uniqueIndex:idx_auth_accounts_email_branch" json:"branch"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}
