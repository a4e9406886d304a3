package util

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
)

// Claims defines the structure of the JWT payload.
type Claims struct {
	UserID uint   `json:"user_id"`
	Phone  string `json:"phone"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a JWT token with the given user information.
func GenerateJWT(userID uint, phone, name string, jwtSecretKey []byte, ttl time.Duration) (string, error) {
	expirationTime := time.Now().Add(ttl)

	claims := &Claims{
		UserID: userID,
		Phone:  phone,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "kitchenAI",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateJWT verifies the JWT token and returns the claims if valid.
func ValidateJWT(tokenString string, jwtSecretKey []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token claims")
}
