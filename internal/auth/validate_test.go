package auth

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"hangul", "김단비", true},
		{"latin", "Dan Lee", true},
		{"mixed", "김 Dan", true},
		{"digits rejected", "김단비2", false},
		{"empty", "", false},
		{"symbols rejected", "dan!", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateName(c.input)
			if (err == nil) != c.ok {
				t.Fatalf("ValidateName(%q) = %v, want ok=%v", c.input, err, c.ok)
			}
		})
	}
}

func TestValidateUserID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"minimum length", "dan1", true},
		{"maximum length", "a2345678901234567890", true},
		{"too short", "dan", false},
		{"too long", "a23456789012345678901", false},
		{"hangul rejected", "단비단비", false},
		{"space rejected", "dan 1", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateUserID(c.input)
			if (err == nil) != c.ok {
				t.Fatalf("ValidateUserID(%q) = %v, want ok=%v", c.input, err, c.ok)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{"letters and special", "abcdefg!", true},
		{"digits and special", "1234567@", true},
		{"all allowed specials", "a1!@#$%^&*", true},
		{"too short", "abc!", false},
		{"no special", "abcdefgh", false},
		{"only specials", "!@#$%^&*", false},
		{"disallowed character", "abcdefg?", false},
		{"space rejected", "abc defg!", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidatePassword(c.input)
			if (err == nil) != c.ok {
				t.Fatalf("ValidatePassword(%q) = %v, want ok=%v", c.input, err, c.ok)
			}
		})
	}
}

func TestValidateNickname(t *testing.T) {
	if err := ValidateNickname("단비"); err != nil {
		t.Fatalf("two hangul runes rejected: %v", err)
	}
	if err := ValidateNickname("한"); err == nil {
		t.Fatal("single rune accepted")
	}
	if err := ValidateNickname(""); err == nil {
		t.Fatal("empty nickname accepted")
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"dan@example.com", true},
		{"a.b@mail.co.kr", true},
		{"dan@example", false},
		{"dan example.com", false},
		{"@example.com", false},
		{"", false},
	}
	for _, c := range cases {
		err := ValidateEmail(c.input)
		if (err == nil) != c.ok {
			t.Fatalf("ValidateEmail(%q) = %v, want ok=%v", c.input, err, c.ok)
		}
	}
}

func TestValidateSignup(t *testing.T) {
	good := SignupForm{
		Name:            "김단비",
		UserID:          "danbi01",
		Password:        "passw0rd!",
		ConfirmPassword: "passw0rd!",
		NickName:        "단비",
		Email:           "danbi@example.com",
	}
	if err := ValidateSignup(good); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	bad := good
	bad.ConfirmPassword = "different!"
	bad.Email = "nope"
	err := ValidateSignup(bad)
	if err == nil {
		t.Fatal("invalid form accepted")
	}

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("err = %T, want FieldErrors", err)
	}
	if _, ok := fieldErrs["confirmPassword"]; !ok {
		t.Fatalf("missing confirmPassword error: %v", fieldErrs)
	}
	if _, ok := fieldErrs["email"]; !ok {
		t.Fatalf("missing email error: %v", fieldErrs)
	}
	if len(fieldErrs) != 2 {
		t.Fatalf("unexpected extra field errors: %v", fieldErrs)
	}
}
