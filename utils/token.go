package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"wedding-backend/config"
)

// AdminSessionDuration is how long an admin login cookie stays valid.
const AdminSessionDuration = 24 * time.Hour

// GenerateAdminToken creates a signed session token carried by the admin
// cookie.
func GenerateAdminToken() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(AdminSessionDuration).Unix(),
	})

	return token.SignedString([]byte(config.C.JWTSecret))
}

// ValidateAdminToken checks the signature, expiry and role claim of a session
// token.
func ValidateAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.C.JWTSecret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || claims["role"] != "admin" {
		return errors.New("invalid session token")
	}
	return nil
}
