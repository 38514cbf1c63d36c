package domain

import (
	"errors"
	"time"
)

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")
var ErrTokenRevoked = errors.New("token revoked")
var ErrNoToken = errors.New("access denied, no token provided")

// Claims is the payload carried in a signed bearer token. It is never
// persisted; the token itself is the only copy handed to the client.
type Claims struct {
	UserID   string
	Role     string
	IssuedAt time.Time
}
