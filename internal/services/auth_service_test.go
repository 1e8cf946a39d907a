// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/severyanochka/storefront-backend/internal/config"
)

// Validation happens before any database access, so these run against a
// service with no connection.
func newValidationOnlyService() *AuthService {
	return NewAuthService(nil, &config.Config{})
}

func TestRegisterValidation(t *testing.T) {
	svc := newValidationOnlyService()

	tests := []struct {
		name string
		req  RegisterRequest
		want error
	}{
		{"missing phone", RegisterRequest{Password: "abc12!"}, ErrPhonePasswordRequired},
		{"missing password", RegisterRequest{Phone: "79120000000"}, ErrPhonePasswordRequired},
		{"short password", RegisterRequest{Phone: "79120000000", Password: "a1!"}, ErrPasswordTooShort},
		{"weak password", RegisterRequest{Phone: "79120000000", Password: "abcdef"}, ErrPasswordTooWeak},
		{"bad phone", RegisterRequest{Phone: "123", Password: "abc12!"}, ErrPhoneInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(&tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := newValidationOnlyService()

	_, err := svc.Login(&LoginRequest{Password: "abc12!"})
	assert.ErrorIs(t, err, ErrPhonePasswordRequired)

	_, err = svc.Login(&LoginRequest{Phone: "79120000000"})
	assert.ErrorIs(t, err, ErrPhonePasswordRequired)
}

func TestProfileData(t *testing.T) {
	assert.Nil(t, profileData(&RegisterRequest{Phone: "79120000000", Password: "abc12!"}))

	profile := profileData(&RegisterRequest{
		Phone:    "79120000000",
		Password: "abc12!",
		Birthday: "1990-05-01",
		City:     "Архангельск",
	})
	assert.Equal(t, "1990-05-01", profile["birthday"])
	assert.Equal(t, "Архангельск", profile["city"])
	assert.NotContains(t, profile, "region")
}
