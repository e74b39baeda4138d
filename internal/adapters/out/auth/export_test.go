package auth

import "time"

// SetClock replaces the issuer's clock.
func (i *JWTIssuer) SetClock(now func() time.Time) {
	i.now = now
}
