package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"watchparty/internal/domain"
)

type adminKeyVerifier struct {
	hash []byte
	key  []byte
}

// NewAdminKeyVerifier returns an AdminVerifier for the shared admin secret.
// When a bcrypt hash is configured it takes precedence and the plain key is
// ignored; otherwise the plain key is compared in constant time.
func NewAdminKeyVerifier(plainKey, bcryptHash string) domain.AdminVerifier {
	return &adminKeyVerifier{
		hash: []byte(bcryptHash),
		key:  []byte(plainKey),
	}
}

func (v *adminKeyVerifier) Verify(candidate string) error {
	if len(v.hash) > 0 {
		if err := bcrypt.CompareHashAndPassword(v.hash, []byte(candidate)); err != nil {
			return domain.ErrForbidden
		}
		return nil
	}
	if len(v.key) == 0 || subtle.ConstantTimeCompare(v.key, []byte(candidate)) != 1 {
		return domain.ErrForbidden
	}
	return nil
}
