package service

import "golang.org/x/crypto/bcrypt"

// PasswordHasher wraps bcrypt with a fixed cost. bcrypt embeds its salt in the
// digest and compares in constant time, so one digest per password is all the
// state we carry.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher at the given cost. Costs outside bcrypt's
// valid range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a storable digest from a plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare reports whether the plaintext matches the stored digest. A
// malformed digest yields false, never an error.
func (h *PasswordHasher) Compare(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
