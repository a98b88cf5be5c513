package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/bloomify/sprig/internal/i18n"
)

// Info is what the token card shows about an access token.
type Info struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Inspect reads the standard claims of a JWT without verifying its
// signature. The server remains the authority; this is for display only.
func Inspect(raw string) (Info, error) {
	var claims jwt.StandardClaims
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, &claims); err != nil {
		return Info{}, fmt.Errorf("parse token: %w", err)
	}
	info := Info{Subject: claims.Subject}
	if claims.IssuedAt > 0 {
		info.IssuedAt = time.Unix(claims.IssuedAt, 0)
	}
	if claims.ExpiresAt > 0 {
		info.ExpiresAt = time.Unix(claims.ExpiresAt, 0)
	}
	return info, nil
}

// Expired reports whether the token has passed its expiry. Tokens without
// an exp claim never expire.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && !now.Before(i.ExpiresAt)
}

// Label describes the remaining lifetime in the localizer's language,
// e.g. "expires in 2h 5m".
func (i Info) Label(l i18n.Localizer, now time.Time) string {
	if i.ExpiresAt.IsZero() {
		return l.T("token.no_expiry")
	}
	if i.Expired(now) {
		return l.T("token.expired_ago", shortDuration(now.Sub(i.ExpiresAt)))
	}
	return l.T("token.expires_in", shortDuration(i.ExpiresAt.Sub(now)))
}

func shortDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		return fmt.Sprintf("%dd", int(d.Hours())/24)
	}
}
