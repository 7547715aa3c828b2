package passwordhasher

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"onboarding/internal/core/domain/user"

	"github.com/samber/oops"
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords peppered with a server secret. The password is
// first reduced with HMAC-SHA256 so that bcrypt's 72 byte input limit never
// truncates long passwords.
type Bcrypt struct {
	secret []byte
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic(fmt.Sprintf("bcrypt cost must be in [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, cost))
	}
	return &Bcrypt{secret: []byte(secret), cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (hash user.PasswordHash, err error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.pepper(password), h.cost)
	if err != nil {
		return hash, oops.In("password_hasher").With("cost", h.cost).Wrapf(err, "could not hash password")
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), h.pepper(password))
	return err == nil
}

func (h *Bcrypt) pepper(password user.RawPassword) []byte {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	sum := mac.Sum(nil)

	encoded := make([]byte, base64.RawStdEncoding.EncodedLen(len(sum)))
	base64.RawStdEncoding.Encode(encoded, sum)
	return encoded
}
