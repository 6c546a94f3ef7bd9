package usecase

import (
	"net/mail"
	"strings"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

// NormalizeEmail lowercases the address and checks its syntax. The bare
// address form is required; display names ("Foo <a@b.c>") are rejected.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", entity.ErrInvalidEmail
	}
	return email, nil
}
