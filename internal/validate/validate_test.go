package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in string
		ok bool
	}{
		{"a@b.com", true},
		{"user.name@sub.example.co", true},
		{"", false},
		{"plainaddress", false},
		{"missing@tld", false},
		{"spaces in@b.com", false},
		{"@b.com", false},
		{"a@", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.ok, Email(c.in), "Email(%q)", c.in)
	}
}

func TestNewPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{"valid", "Abc12!", true},
		{"valid max length", "Abcdef1234!@", true},
		{"too short", "Ab1!", false},
		{"too long", "Abcdefgh1234!", false},
		{"no uppercase", "abc12!", false},
		{"no lowercase", "ABC12!", false},
		{"no digit", "Abcde!", false},
		{"no special", "Abc123", false},
		{"empty", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			msg := NewPassword(c.in)
			if c.ok {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}
