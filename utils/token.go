package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/teg-hub/fair-chance-workforce-platform/models"
)

var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set in the environment")
	}
	return []byte(secret), nil
}

// GenerateAccessToken mints an HS256 bearer token carrying the user's
// identity and tenant.
func GenerateAccessToken(user models.User) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   user.ID,
		"tenant_id": user.TenantID,
		"role":      user.Role,
		"exp":       time.Now().Add(72 * time.Hour).Unix(),
	})
	return token.SignedString(secret)
}

// ParseAccessToken verifies tokenString and returns its identity claims.
// Any defect in the credential yields ErrInvalidToken; no partial result.
func ParseAccessToken(tokenString string) (userID, tenantID, role string, err error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", "", "", err
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", ErrInvalidToken
	}
	userID, okUser := claims["user_id"].(string)
	tenantID, okTenant := claims["tenant_id"].(string)
	if !okUser || !okTenant || userID == "" || tenantID == "" {
		return "", "", "", ErrInvalidToken
	}
	role, _ = claims["role"].(string)
	return userID, tenantID, role, nil
}
