package seed

import (
	"context"
	"testing"

	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSeedsAccountsAndMenus(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, Run(ctx, st))

	// 시딩된 계정으로 바로 로그인 가능해야 한다
	svc := auth.NewService(st, false)
	user, err := svc.Login(ctx, models.BranchYongho, "admin", "1234")
	require.NoError(t, err)
	assert.Equal(t, "관리자", user.Name)
	assert.Equal(t, models.RoleManager, user.Role)

	// 같은 사번이 두 지점에 각각 시딩됨
	for _, branch := range models.Branches {
		user, err := svc.Login(ctx, branch, "MK000", "0709")
		require.NoError(t, err, "branch %s", branch)
		assert.Equal(t, branch, user.Branch)
	}

	// 메뉴: 용호동점에서는 전 지점 메뉴 + 용호동점 메뉴
	menus, err := st.GetMenus(ctx, models.BranchYongho)
	require.NoError(t, err)
	assert.Len(t, menus, 2)
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, Run(ctx, st))
	require.NoError(t, Run(ctx, st))

	accounts, err := st.FindAccounts(ctx, auth.SyntheticEmail("admin"))
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	menus, err := st.GetMenus(ctx, models.BranchYongho)
	require.NoError(t, err)
	assert.Len(t, menus, 2)
}
