package auth

import (
	"time"

	"healingcook-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCustomClaims struct {
	UID        string            `json:"uid"`
	EmployeeID string            `json:"employee_id"`
	Name       string            `json:"name"`
	Branch     models.BranchName `json:"branch"`
	Role       models.UserRole   `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, user *models.User) (string, error) {
	claims := &JWTCustomClaims{
		UID:        user.UID,
		EmployeeID: user.EmployeeID,
		Name:       user.Name,
		Branch:     user.Branch,
		Role:       user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // 1일
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
