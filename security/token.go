package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const (
	PurposeSession = "session"
	PurposeReset   = "reset"

	RoleStudent = "student"
	RoleAdmin   = "admin"

	// Reset tokens authorize a password change without re-proving the
	// password, so they live much shorter than session tokens.
	resetTokenTTL = 15 * time.Minute
)

// ErrTokenInvalid covers every verification failure. Callers must not
// tell the end user whether a token was malformed, forged or expired.
var ErrTokenInvalid = errors.New("invalid or expired token")

type Claims struct {
	UserID  uint   `json:"userId"`
	Email   string `json:"email"`
	Role    string `json:"role,omitempty"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

func MakeSessionToken(userID uint, email, role string) (string, error) {
	return SignClaims(&Claims{
		UserID:  userID,
		Email:   email,
		Role:    role,
		Purpose: PurposeSession,
	}, viper.GetDuration("jwt.session_ttl"))
}

func MakeResetToken(userID uint, email string) (string, error) {
	return SignClaims(&Claims{
		UserID:  userID,
		Email:   email,
		Purpose: PurposeReset,
	}, resetTokenTTL)
}

// SignClaims fills the registered claims and signs with the shared HS256 secret
func SignClaims(c *Claims, ttl time.Duration) (string, error) {
	now := time.Now()

	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
