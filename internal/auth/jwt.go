package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL — срок жизни токена; после истечения другого механизма отзыва нет.
	TokenTTL = 7 * 24 * time.Hour

	issuer   = "Driven"
	audience = "users"
)

// Claims — стандартные утверждения плюс email пользователя.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// GenerateToken выпускает подписанный HS256 токен:
// subject = id пользователя строкой, issuer/audience — константы, срок — TokenTTL.
func GenerateToken(userID int64, email string, secret string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email: email,
	})
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия, возвращает id и email пользователя.
func ParseToken(tokenString string, secret string) (int64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// только HMAC, подмену алгоритма не принимаем
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token claims")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("malformed subject claim: %w", err)
	}
	return userID, claims.Email, nil
}
