package utils

import "testing"

func TestValidateRegistration(t *testing.T) {
	if err := ValidateRegistration("drsmith", "drsmith@example.test", "Str0ng!Pass"); err != nil {
		t.Fatalf("valid registration rejected: %v", err)
	}
	if err := ValidateRegistration("ab", "drsmith@example.test", "Str0ng!Pass"); err == nil {
		t.Fatalf("two-letter username accepted")
	}
	if err := ValidateRegistration("drsmith", "not-an-email", "Str0ng!Pass"); err == nil {
		t.Fatalf("malformed email accepted")
	}
}

func TestPasswordComplexity(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Str0ng!Pass", true},
		{"Sh0rt!", false},         // too short
		{"alllowercase1!", false}, // no uppercase
		{"ALLUPPERCASE1!", false}, // no lowercase
		{"NoDigits!!", false},     // no digit
		{"NoSpecial11", false},    // no special character
	}
	for _, c := range cases {
		err := ValidateRegistration("drsmith", "drsmith@example.test", c.password)
		if c.ok && err != nil {
			t.Fatalf("password %q rejected: %v", c.password, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("password %q accepted", c.password)
		}
	}
}

func TestValidatePasswordReset(t *testing.T) {
	if err := ValidatePasswordReset("123456", "Str0ng!Pass"); err != nil {
		t.Fatalf("valid reset rejected: %v", err)
	}
	if err := ValidatePasswordReset("", "Str0ng!Pass"); err == nil {
		t.Fatalf("blank reset code accepted")
	}
	if err := ValidatePasswordReset("123456", "weak"); err == nil {
		t.Fatalf("weak new password accepted")
	}
}
