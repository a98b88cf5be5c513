package profile

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// User is the Bloomify user record as the settings screen needs it. Field
// aliases and loosely typed numbers are resolved once in UnmarshalJSON so
// nothing downstream deals with raw keys.
type User struct {
	ID             string
	FirstName      string
	LastName       string
	Username       string
	Email          string
	UserType       string
	ProfilePicture string
	Rating         float64
	TotalBookings  int
	Balance        float64
	IsVerified     bool
}

var bookingAliases = []string{"total_bookings", "totalBookings", "booking_count"}

// UnmarshalJSON decodes a user object, accepting snake_case and camelCase
// names and numbers encoded as JSON numbers or numeric strings.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}

	*u = User{
		ID:             stringField(raw, "id", "_id"),
		FirstName:      stringField(raw, "first_name", "firstName"),
		LastName:       stringField(raw, "last_name", "lastName"),
		Username:       stringField(raw, "username"),
		Email:          stringField(raw, "email"),
		UserType:       stringField(raw, "user_type", "userType"),
		ProfilePicture: stringField(raw, "profile_picture", "profilePicture"),
		Rating:         CoerceFloat(anyField(raw, "rating")),
		TotalBookings:  CoerceInt(anyField(raw, bookingAliases...)),
		Balance:        CoerceFloat(anyField(raw, "balance")),
		IsVerified:     boolField(raw, "is_verified", "isVerified"),
	}
	return nil
}

// MarshalJSON writes the canonical snake_case form.
func (u User) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"id":              u.ID,
		"first_name":      u.FirstName,
		"last_name":       u.LastName,
		"username":        u.Username,
		"email":           u.Email,
		"user_type":       u.UserType,
		"profile_picture": u.ProfilePicture,
		"rating":          u.Rating,
		"total_bookings":  u.TotalBookings,
		"balance":         u.Balance,
		"is_verified":     u.IsVerified,
	})
}

// CoerceFloat converts a decoded JSON value to float64. Numbers, integers
// and numeric strings are accepted; anything else yields 0.
func CoerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

// CoerceInt converts a decoded JSON value to int using the same rules as
// CoerceFloat. Fractions are truncated.
func CoerceInt(v any) int {
	if s, ok := v.(string); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
	}
	return int(CoerceFloat(v))
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func anyField(raw map[string]json.RawMessage, names ...string) any {
	for _, name := range names {
		msg, ok := raw[name]
		if !ok {
			continue
		}
		var v any
		if err := json.Unmarshal(msg, &v); err != nil || v == nil {
			continue
		}
		return v
	}
	return nil
}

func stringField(raw map[string]json.RawMessage, names ...string) string {
	switch v := anyField(raw, names...).(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func boolField(raw map[string]json.RawMessage, names ...string) bool {
	switch v := anyField(raw, names...).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}
