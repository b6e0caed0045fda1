package auth

import "golang.org/x/crypto/bcrypt"

// Hasher turns a plaintext password into the digest stored at signup.
type Hasher interface {
	Hash(plaintext string) (string, error)
}

// BcryptHasher is the production Hasher. Zero cost means bcrypt's default.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}
