package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/certvera/certvera/internal/common"
)

// timeNow is a test seam for the expiry clock.
var timeNow = time.Now

// CheckExpiry inspects the token's "exp" claim without verifying the
// signature (verification is the backend's job) and returns
// common.ErrTokenExpired when the claim is in the past.
//
// Tokens that are not JWTs, or JWTs without an exp claim, pass the check:
// the backend remains the authority and will reject them if needed.
func CheckExpiry(token string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	if exp.Before(timeNow()) {
		return common.ErrTokenExpired
	}
	return nil
}
