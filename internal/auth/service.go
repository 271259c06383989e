package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"healingcook-backend/internal/models"
	"healingcook-backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// 로그인 이메일 합성 도메인: <사번>@healingcook.com
const EmailDomain = "healingcook.com"

var (
	// 아이디/비밀번호 오류는 구분하지 않는다 (계정 존재 여부 노출 방지)
	ErrInvalidCredentials = errors.New("아이디 또는 비밀번호가 잘못되었습니다")

	// 자격 증명은 맞지만 선택한 지점 소속이 아님
	ErrUnauthorizedBranch = errors.New("선택한 지점의 소속 직원이 아닙니다")

	// 인증은 됐지만 프로필 문서가 없음 (엄격 정책에서만 반환)
	ErrProfileNotFound = errors.New("사용자 정보를 찾을 수 없습니다")
)

// ValidationError: 백엔드 호출 전에 걸러내는 입력 형식 오류
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// 비밀번호 형식: 영문 대/소문자, 숫자, 특수문자(!@#$%^&*)로만 구성된 4~12자리
var passwordPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*]{4,12}$`)

func ValidatePassword(password string) bool {
	return passwordPattern.MatchString(password)
}

func SyntheticEmail(employeeID string) string {
	return fmt.Sprintf("%s@%s", employeeID, EmailDomain)
}

type Service struct {
	store store.Store

	// ProfileFallback: 인증 계정은 있는데 프로필 문서가 없을 때의 정책.
	// false면 ErrProfileNotFound로 로그인 실패,
	// true면 인증 정보만 담긴 축소 User로 계속 진행 (이후 지점 검사는 그대로 적용됨)
	ProfileFallback bool
}

func NewService(st store.Store, profileFallback bool) *Service {
	return &Service{store: st, ProfileFallback: profileFallback}
}

// Login: (지점, 사번, 비밀번호) → 세션 사용자.
// 비밀번호가 맞아도 지점이 다르면 로그인 전체가 실패한다.
func (s *Service) Login(ctx context.Context, branch models.BranchName, employeeID, password string) (*models.User, error) {
	if !models.IsValidBranch(branch) {
		return nil, &ValidationError{Msg: "지점을 선택하세요"}
	}
	if employeeID == "" {
		return nil, &ValidationError{Msg: "사번을 입력하세요"}
	}
	if !ValidatePassword(password) {
		return nil, &ValidationError{Msg: "비밀번호는 영문 대/소문자, 숫자, 특수문자(!@#$%^&*)를 포함한 4~12자리여야 합니다"}
	}

	email := SyntheticEmail(employeeID)

	accounts, err := s.store.FindAccounts(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrInvalidCredentials
	}

	// 같은 사번이 여러 지점에 있으면 선택한 지점 계정을 우선
	account := accounts[0]
	for _, a := range accounts {
		if a.Branch == branch {
			account = a
			break
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.GetUser(ctx, account.UID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if !s.ProfileFallback {
			return nil, ErrProfileNotFound
		}
		// 프로필이 아직 안 만들어진 계정: 인증 정보만으로 축소 User 구성
		user = &models.User{
			UID:        account.UID,
			EmployeeID: employeeID,
			Email:      email,
		}
	}

	// 지점 검사: 소속 지점이거나 힐링쿡(전 지점) 계정이어야 함
	if user.Branch != branch && user.Branch != models.BranchAll {
		return nil, ErrUnauthorizedBranch
	}

	return user, nil
}
