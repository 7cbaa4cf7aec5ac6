package util

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	mu       sync.RWMutex
	secret   = []byte("change-me")
	tokenTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

// Claims 令牌中携带用户 ID 与角色
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// ConfigureTokens 启动时设置签名密钥与有效期
func ConfigureTokens(key string, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if key != "" {
		secret = []byte(key)
	}
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func GenerateToken(userID uint, role string) (string, error) {
	mu.RLock()
	key, ttl := secret, tokenTTL
	mu.RUnlock()

	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// ValidateToken 返回令牌中的用户 ID 与角色
func ValidateToken(tokenString string) (uint, string, error) {
	mu.RLock()
	key := secret
	mu.RUnlock()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", ErrInvalidToken
	}
	return uint(userID), claims.Role, nil
}
