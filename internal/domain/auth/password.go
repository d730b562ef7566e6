package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implementa users.PasswordHasher.
// bcrypt solo mira los primeros 72 bytes, así que el password se reduce antes
// con SHA-256 (base64, 44 bytes) y no hay tope de largo para el usuario.
type BcryptHasher struct {
	Cost int

	dummyOnce sync.Once
	dummy     []byte
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prehash(password), h.Cost)
	return string(b), err
}

func (h *BcryptHasher) Check(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

// Burn hace una comparación contra un hash descartable para que un email inexistente
// tarde lo mismo que un password incorrecto.
func (h *BcryptHasher) Burn(password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword(prehash("not-a-real-password"), h.Cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, prehash(password))
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
