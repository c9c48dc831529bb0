package auth

import (
	"strings"

	"Rateio/config"
	appErrors "Rateio/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type Login struct {
	Email    string
	Password string
}

// Service autentica o único administrador; a identidade vem da configuração.
type Service struct {
	AdminEmail        string
	AdminPasswordHash string
}

func NewService(cfg *config.Config) *Service {
	return &Service{
		AdminEmail:        cfg.Admin.Email,
		AdminPasswordHash: cfg.Admin.PasswordHash,
	}
}

// Login valida as credenciais. E-mail desconhecido e senha errada respondem
// com o mesmo erro.
func (s *Service) Login(login Login) error {
	if !strings.EqualFold(strings.TrimSpace(login.Email), s.AdminEmail) {
		return appErrors.ErrInvalidCredentials
	}
	return PasswordValidate(login.Password, s.AdminPasswordHash)
}

func PasswordValidate(inputPassword string, storedHash string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "deve ser informada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

func PasswordHashing(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return string(hash), nil
}
