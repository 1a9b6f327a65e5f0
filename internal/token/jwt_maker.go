package token

import (
	"errors"
	"fmt"
	"time"
	
	"github.com/golang-jwt/jwt/v5"
)

// JWTMaker signs and verifies HS256 tokens with a shared secret.
type JWTMaker struct {
	secretKey []byte
}

func NewJWTMaker(secretKey string) (Maker, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("token secret key must not be empty")
	}
	
	return &JWTMaker{secretKey: []byte(secretKey)}, nil
}

func (maker *JWTMaker) CreateToken(userID, email, role string, duration time.Duration) (string, *Payload, error) {
	payload, err := NewPayload(userID, email, role, duration)
	if err != nil {
		return "", nil, err
	}
	
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &payload).SignedString(maker.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	
	return token, &payload, nil
}

func (maker *JWTMaker) VerifyToken(tokenString string) (*Payload, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return maker.secretKey, nil
	}
	
	var payload Payload
	_, err := jwt.ParseWithClaims(tokenString, &payload, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	
	if payload.Type == tokenTypeRefresh || payload.Identity() == "" {
		return nil, ErrInvalidToken
	}
	
	return &payload, nil
}
