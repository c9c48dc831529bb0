package auth_test

import (
	"testing"

	"Rateio/config"
	"Rateio/internal/domain/auth"
	appErrors "Rateio/internal/errors"
)

func newService(t *testing.T, email, password string) *auth.Service {
	t.Helper()

	hash, err := auth.PasswordHashing(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	cfg := &config.Config{}
	cfg.Admin.Email = email
	cfg.Admin.PasswordHash = hash
	return auth.NewService(cfg)
}

func TestServiceLogin(t *testing.T) {
	t.Parallel()

	svc := newService(t, "sindico@condominio.com", "senha-forte")

	tests := []struct {
		name     string
		login    auth.Login
		wantCode string
	}{
		{
			name:  "valid credentials",
			login: auth.Login{Email: "sindico@condominio.com", Password: "senha-forte"},
		},
		{
			name:  "email is case insensitive",
			login: auth.Login{Email: "SINDICO@Condominio.com", Password: "senha-forte"},
		},
		{
			name:     "unknown email",
			login:    auth.Login{Email: "outro@condominio.com", Password: "senha-forte"},
			wantCode: appErrors.ErrInvalidCredentials.Code,
		},
		{
			name:     "wrong password",
			login:    auth.Login{Email: "sindico@condominio.com", Password: "senha-errada"},
			wantCode: appErrors.ErrInvalidCredentials.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Login(tt.login)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestPasswordValidateRequiresPassword(t *testing.T) {
	t.Parallel()

	if err := auth.PasswordValidate("", "qualquer-hash"); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
