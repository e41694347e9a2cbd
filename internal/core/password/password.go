// Package password implements one-way credential hashing on top of bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor applied to every new hash.
const Cost = 10

// Hash derives a salted, adaptive one-way hash of plain.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plain matches hash. A malformed hash yields
// false rather than an error, so callers cannot tell a corrupt stored
// value apart from a plain mismatch.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
