package auth

import (
	"errors"
	"time"

	"artlink_backend/internal/config"
	"artlink_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка access-токена
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.UserRole `json:"role"`
	Name   string          `json:"name,omitempty"`
	Email  string          `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken создает подписанный access-токен для пользователя
func GenerateToken(user *models.User) (string, error) {
	cfg := config.GetConfig()

	ttl := time.Duration(cfg.JWT.TTL) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}

	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken валидирует токен и возвращает claims
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
