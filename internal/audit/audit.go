package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"
)

type LogOptions struct {
	Branch      models.BranchName
	UserUID     string
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(ctx context.Context, st store.Store, opts LogOptions) error {
	// jsonb 컬럼에는 빈 문자열 대신 "null"을 넣어야 한다
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		Branch:      opts.Branch,
		UserUID:     opts.UserUID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := st.AddAuditLog(ctx, entry); err != nil {
		return fmt.Errorf("감사 로그를 기록할 수 없습니다: %w", err)
	}
	return nil
}
