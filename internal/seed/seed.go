package seed

import (
	"context"
	"fmt"
	"log"

	"healingcook-backend/internal/auth"
	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	EmployeeID string
	Password   string
	Name       string
	Branch     models.BranchName
	Role       models.UserRole
}

var seedUsers = []seedUser{
	{EmployeeID: "admin", Password: "1234", Name: "관리자", Branch: models.BranchYongho, Role: models.RoleManager},
	{EmployeeID: "staff1", Password: "1234", Name: "직원1", Branch: models.BranchYongho, Role: models.RoleStaff},
	{EmployeeID: "staff2", Password: "1234", Name: "직원2", Branch: models.BranchHaeundae, Role: models.RoleStaff},
	{EmployeeID: "MK000", Password: "0709", Name: "전문기", Branch: models.BranchYongho, Role: models.RoleManager},
	{EmployeeID: "MK000", Password: "0709", Name: "전문기", Branch: models.BranchHaeundae, Role: models.RoleManager},
	{EmployeeID: "KYH001", Password: "0000", Name: "김영화", Branch: models.BranchYongho, Role: models.RoleManager},
	{EmployeeID: "KYH001", Password: "0000", Name: "김영화", Branch: models.BranchHaeundae, Role: models.RoleManager},
	{EmployeeID: "KTH001", Password: "0000", Name: "김태휘", Branch: models.BranchYongho, Role: models.RoleManager},
	{EmployeeID: "KMS001", Password: "0000", Name: "김민성", Branch: models.BranchHaeundae, Role: models.RoleManager},
}

var seedMenus = []models.Menu{
	{Name: "배추김치", Branch: models.BranchAll, ShelfLife: 30, IsActive: true},
	{Name: "멸치볶음", Branch: models.BranchYongho, ShelfLife: 7, IsActive: true},
	{Name: "계란말이", Branch: models.BranchHaeundae, ShelfLife: 1, IsActive: true},
}

// Run: 계정/프로필/메뉴 초기 데이터 생성. 이미 있는 항목은 건너뛴다
func Run(ctx context.Context, st store.Store) error {
	log.Println("초기 데이터 생성 시작...")

	for _, u := range seedUsers {
		email := auth.SyntheticEmail(u.EmployeeID)

		existing, err := st.FindAccounts(ctx, email)
		if err != nil {
			return fmt.Errorf("계정 조회 실패 (%s): %w", u.EmployeeID, err)
		}
		exists := false
		for _, a := range existing {
			if a.Branch == u.Branch {
				exists = true
				break
			}
		}
		if exists {
			log.Printf("계정 %s (%s) 이미 존재, 건너뜀", u.EmployeeID, u.Branch)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("비밀번호 해시 실패 (%s): %w", u.EmployeeID, err)
		}

		account, err := st.CreateAccount(ctx, models.AuthAccount{
			Email:        email,
			Branch:       u.Branch,
			PasswordHash: string(hash),
		})
		if err != nil {
			return fmt.Errorf("계정 생성 실패 (%s): %w", u.EmployeeID, err)
		}

		_, err = st.CreateUser(ctx, models.User{
			UID:        account.UID,
			EmployeeID: u.EmployeeID,
			Name:       u.Name,
			Email:      email,
			Branch:     u.Branch,
			Role:       u.Role,
		})
		if err != nil {
			return fmt.Errorf("프로필 생성 실패 (%s): %w", u.EmployeeID, err)
		}

		log.Printf("계정 %s (%s) 생성됨", u.EmployeeID, u.Branch)
	}

	// 메뉴는 하나라도 있으면 전체를 건너뛴다 (중복 생성 방지)
	menus, err := st.GetMenus(ctx, models.BranchYongho)
	if err != nil {
		return fmt.Errorf("메뉴 조회 실패: %w", err)
	}
	if len(menus) > 0 {
		log.Println("메뉴가 이미 존재, 건너뜀")
	} else {
		for _, m := range seedMenus {
			if _, err := st.AddMenu(ctx, m); err != nil {
				return fmt.Errorf("메뉴 생성 실패 (%s): %w", m.Name, err)
			}
			log.Printf("메뉴 %s (%s) 생성됨", m.Name, m.Branch)
		}
	}

	log.Println("초기 데이터 생성 완료.")
	return nil
}
