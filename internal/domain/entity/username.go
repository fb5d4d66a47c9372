package entity

import (
	"regexp"
	"strings"

	"waitlist/internal/errors"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
)

var (
	ErrUsernameTooShort     = errors.New("username must be at least 3 characters")
	ErrUsernameTooLong      = errors.New("username must be at most 20 characters")
	ErrUsernameInvalidChars = errors.New("username may only contain lowercase letters, numbers and underscores")
	ErrUsernameReserved     = errors.New("username is reserved")
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

var reservedUsernames = map[string]struct{}{
	"admin": {}, "support": {}, "leaderboard": {}, "about": {}, "help": {}, "contact": {},
	"root": {}, "shibabet": {}, "dashboard": {}, "login": {}, "signup": {}, "signin": {},
	"signout": {}, "logout": {}, "invite": {}, "referral": {}, "referrals": {}, "api": {},
	"www": {}, "mail": {}, "email": {}, "user": {}, "users": {}, "profile": {}, "profiles": {},
	"settings": {}, "account": {}, "accounts": {}, "terms": {}, "privacy": {}, "legal": {},
	"blog": {}, "news": {}, "faq": {}, "home": {}, "index": {}, "null": {}, "undefined": {},
	"test": {}, "testing": {}, "dev": {}, "development": {}, "staging": {}, "prod": {},
	"production": {},
}

// NormalizeUsername trims and lowercases a username candidate.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateUsername checks an already normalized username against the naming policy.
func ValidateUsername(username string) error {
	switch {
	case len(username) < UsernameMinLength:
		return ErrUsernameTooShort
	case len(username) > UsernameMaxLength:
		return ErrUsernameTooLong
	case !usernamePattern.MatchString(username):
		return ErrUsernameInvalidChars
	}

	if _, reserved := reservedUsernames[username]; reserved {
		return ErrUsernameReserved
	}

	return nil
}

// NormalizeReferralCode trims and uppercases a referral code as typed or linked.
func NormalizeReferralCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
