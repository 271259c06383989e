package dashboard

import (
	"sort"
	"time"

	"healingcook-backend/internal/models"
)

type LogKind string

const (
	KindProduction LogKind = "production"
	KindInventory  LogKind = "inventory"
)

// Activity: 최근 활동 피드 항목 (생산/재고 로그 공통 뷰)
type Activity struct {
	ID        string            `json:"id"`
	Kind      LogKind           `json:"kind"`
	Branch    models.BranchName `json:"branch"`
	MenuName  string            `json:"menuName"`
	Quantity  float64           `json:"quantity"`
	Author    string            `json:"author"`
	Timestamp time.Time         `json:"timestamp"`
}

const recentActivityLimit = 5

// TodayProduction: now와 같은 달력 날짜(로컬 기준)에 생산된 수량 합계.
// UTC가 아니라 로컬 날짜 비교라는 점이 중요하다 ("오늘 총 생산량" 카드)
func TodayProduction(logs []models.ProductionLog, now time.Time) float64 {
	y, m, d := now.Date()

	var sum float64
	for _, log := range logs {
		ly, lm, ld := log.Timestamp.In(now.Location()).Date()
		if ly == y && lm == m && ld == d {
			sum += log.Quantity
		}
	}
	return sum
}

// RecentActivities: 생산/재고 로그를 종류 태그를 붙여 합치고
// 최신순으로 최대 5건 반환. 로그가 5건 미만이면 전부 반환
func RecentActivities(prodLogs []models.ProductionLog, invLogs []models.InventoryLog) []Activity {
	activities := make([]Activity, 0, len(prodLogs)+len(invLogs))

	for _, l := range prodLogs {
		activities = append(activities, Activity{
			ID:        l.ID,
			Kind:      KindProduction,
			Branch:    l.Branch,
			MenuName:  l.MenuName,
			Quantity:  l.Quantity,
			Author:    l.Author,
			Timestamp: l.Timestamp,
		})
	}
	for _, l := range invLogs {
		activities = append(activities, Activity{
			ID:        l.ID,
			Kind:      KindInventory,
			Branch:    l.Branch,
			MenuName:  l.MenuName,
			Quantity:  l.Quantity,
			Author:    l.Author,
			Timestamp: l.Timestamp,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})

	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}
	return activities
}
