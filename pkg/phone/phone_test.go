package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already E.164", "+5491155551234", "+5491155551234"},
		{"spaces and dashes", "54 9 11 5555-1234", "+5491155551234"},
		{"parentheses", "(54) 911 5555 1234", "+5491155551234"},
		{"leading zero stripped", "0541155551234", "+541155551234"},
		{"local number gets country code", "5555123", "+545555123"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, ""))
		})
	}
}

func TestNormalize_CustomCountryCode(t *testing.T) {
	assert.Equal(t, "+5985555123", Normalize("5555123", "598"))
}
