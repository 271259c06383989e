package main

import (
	"context"
	"log"

	"healingcook-backend/internal/config"
	"healingcook-backend/internal/database"
	"healingcook-backend/internal/seed"
	"healingcook-backend/internal/store"
)

// 초기 계정/메뉴 시딩. 서버와 별도로 수동 실행한다
func main() {
	cfg := config.Load()
	database.Init(cfg)

	st := store.NewPostgresStore(database.DB)

	if err := seed.Run(context.Background(), st); err != nil {
		log.Fatalf("시딩 실패: %v", err)
	}
}
