package auth

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	nameRe   = regexp.MustCompile(`^[가-힣a-zA-Z\s]+$`)
	userIDRe = regexp.MustCompile(`^[a-zA-Z0-9]{4,20}$`)
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

const passwordSpecials = "!@#$%^&*"

// FieldErrors maps a form field to its inline validation message. A request
// is never sent while any field error is present.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// ValidateName accepts Hangul and Latin letters (plus spaces) only
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("name must contain only Korean or Latin letters")
	}
	return nil
}

// ValidateUserID enforces the 4-20 alphanumeric login id rule
func ValidateUserID(userID string) error {
	if !userIDRe.MatchString(userID) {
		return fmt.Errorf("user id must be 4-20 letters and digits")
	}
	return nil
}

// ValidatePassword enforces the password policy: at least 8 characters
// drawn from letters, digits and !@#$%^&*, with at least one letter or
// digit and at least one special character.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	var hasWord, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			hasWord = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return fmt.Errorf("password may only use letters, digits and %s", passwordSpecials)
		}
	}
	if !hasWord || !hasSpecial {
		return fmt.Errorf("password needs a letter or digit and a special character")
	}
	return nil
}

// ValidateNickname requires at least two characters
func ValidateNickname(nickName string) error {
	if utf8.RuneCountInString(nickName) < 2 {
		return fmt.Errorf("nickname must be at least 2 characters")
	}
	return nil
}

// ValidateEmail checks the basic mailbox@domain.tld shape
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return fmt.Errorf("not a valid email address")
	}
	return nil
}

// SignupForm is everything the signup screen collects
type SignupForm struct {
	Name            string
	UserID          string
	Password        string
	ConfirmPassword string
	NickName        string
	Email           string
}

// ValidateSignup runs every field validator and the password match check,
// returning nil or the full set of field errors.
func ValidateSignup(f SignupForm) error {
	errs := FieldErrors{}
	if err := ValidateName(f.Name); err != nil {
		errs["name"] = err.Error()
	}
	if err := ValidateUserID(f.UserID); err != nil {
		errs["userId"] = err.Error()
	}
	if err := ValidatePassword(f.Password); err != nil {
		errs["password"] = err.Error()
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "passwords do not match"
	}
	if err := ValidateNickname(f.NickName); err != nil {
		errs["nickName"] = err.Error()
	}
	if err := ValidateEmail(f.Email); err != nil {
		errs["email"] = err.Error()
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
