package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected error
	}{
		{name: "Valid password", password: "Oceans4ever", expected: nil},
		{name: "Too short", password: "Oc3an", expected: ErrPasswordTooShort},
		{name: "Missing uppercase", password: "oceans4ever", expected: ErrPasswordNoUpper},
		{name: "Missing lowercase", password: "OCEANS4EVER", expected: ErrPasswordNoLower},
		{name: "Missing digit", password: "OceansForever", expected: ErrPasswordNoDigit},
		{name: "Exactly eight characters", password: "Oceans45", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.password)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
