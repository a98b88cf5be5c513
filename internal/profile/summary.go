package profile

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	guestName       = "Guest User"
	unnamedUserName = "User"
)

// Summary is the display-ready view of a user. It is recomputed on every
// render and never stored.
type Summary struct {
	DisplayName  string
	UserType     string
	PictureURL   string
	Rating       float64
	BookingCount int
	Balance      float64
	IsVerified   bool
	Guest        bool
}

// Summarize projects u into a Summary. A nil user yields the guest summary.
func Summarize(u *User) Summary {
	if u == nil {
		return Summary{DisplayName: guestName, Guest: true}
	}
	return Summary{
		DisplayName:  displayName(u),
		UserType:     strings.TrimSpace(u.UserType),
		PictureURL:   strings.TrimSpace(u.ProfilePicture),
		Rating:       u.Rating,
		BookingCount: u.TotalBookings,
		Balance:      u.Balance,
		IsVerified:   u.IsVerified,
	}
}

func displayName(u *User) string {
	first := strings.TrimSpace(u.FirstName)
	last := strings.TrimSpace(u.LastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	}
	if username := strings.TrimSpace(u.Username); username != "" {
		return username
	}
	return unnamedUserName
}

// Initials returns up to two upper-case initials for the avatar badge.
func (s Summary) Initials() string {
	var out []rune
	for _, word := range strings.Fields(s.DisplayName) {
		r := []rune(word)
		if len(r) == 0 || !unicode.IsLetter(r[0]) {
			continue
		}
		out = append(out, unicode.ToUpper(r[0]))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// RatingLabel formats the rating with one decimal place.
func (s Summary) RatingLabel() string {
	return fmt.Sprintf("%.1f ★", s.Rating)
}

// BookingsLabel pluralises the booking count.
func (s Summary) BookingsLabel() string {
	if s.BookingCount == 1 {
		return "1 booking"
	}
	return fmt.Sprintf("%d bookings", s.BookingCount)
}

// BalanceLabel formats the balance with the given currency code.
func (s Summary) BalanceLabel(currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return fmt.Sprintf("%.2f", s.Balance)
	}
	return fmt.Sprintf("%s %.2f", strings.ToUpper(currency), s.Balance)
}

// UserTypeLabel title-cases the account type ("service_provider" →
// "Service Provider"). Guests and unknown types read "Customer".
func (s Summary) UserTypeLabel() string {
	t := strings.TrimSpace(s.UserType)
	if t == "" {
		return "Customer"
	}
	parts := strings.FieldsFunc(t, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, p := range parts {
		lower := strings.ToLower(p)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
