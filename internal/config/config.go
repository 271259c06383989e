package config

import (
	"log"
	"os"
)

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	JWTSecret    string
	CORSOrigins  string
	StoreBackend string // postgres | memory
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=healingcook port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		StoreBackend: getEnv("STORE_BACKEND", StoreBackendPostgres),
	}

	// 운영 환경 안전 점검
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET 환경 변수가 설정되지 않았습니다. 운영 환경에서는 필수입니다.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET은 최소 32자 이상이어야 합니다.")
	}
	if cfg.StoreBackend != StoreBackendPostgres && cfg.StoreBackend != StoreBackendMemory {
		log.Fatalf("[FATAL] STORE_BACKEND 값이 잘못되었습니다: %s (postgres 또는 memory)", cfg.StoreBackend)
	}
	if cfg.StoreBackend == StoreBackendMemory {
		log.Println("[WARN] 인메모리 저장소를 사용 중입니다. 프로세스 종료 시 데이터가 사라집니다.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS 기본값을 사용 중입니다. 운영 환경에서는 반드시 도메인을 지정하세요.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
