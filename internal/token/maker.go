package token

import (
	"time"
)

// Maker issues and verifies access tokens. The service itself only
// verifies; CreateToken exists for tooling and tests.
type Maker interface {
	CreateToken(userID, email, role string, duration time.Duration) (token string, payload *Payload, err error)
	VerifyToken(tokenString string) (payload *Payload, err error)
}
