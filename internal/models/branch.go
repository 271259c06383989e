package models

type BranchName string

const (
	BranchYongho   BranchName = "용호동점"
	BranchHaeundae BranchName = "해운대점"

	// BranchAll: 전 지점 공통 (본사 소속 계정 / 전 지점 노출 메뉴)
	BranchAll BranchName = "힐링쿡"
)

// 로그인 시 선택 가능한 실제 지점 목록
var Branches = []BranchName{BranchYongho, BranchHaeundae}

func IsValidBranch(b BranchName) bool {
	for _, v := range Branches {
		if v == b {
			return true
		}
	}
	return false
}

// 메뉴의 지점은 실제 지점이거나 전 지점(힐링쿡)이어야 한다
func IsValidMenuBranch(b BranchName) bool {
	return b == BranchAll || IsValidBranch(b)
}
