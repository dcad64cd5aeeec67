package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/sunnyBaby1024/blog/config"
	"github.com/sunnyBaby1024/blog/models"
)

// GenerateSessionToken signs the admin session token. The expiry is fixed at
// issue time; requests never extend it.
func GenerateSessionToken(admin models.Admin, lifetime time.Duration) (string, error) {
	jwtSecret := []byte(config.App.JWTSecret)

	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"username": admin.Username,
		"exp":      time.Now().Add(lifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func DecodeSessionToken(tokenString string) (jwt.MapClaims, error) {
	jwtSecret := []byte(config.App.JWTSecret)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid or expired token")
}
