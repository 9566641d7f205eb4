package utils

import "golang.org/x/crypto/bcrypt"

// HashSecret hashes a short-lived secret (such as a one-time code) with bcrypt
func HashSecret(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CompareSecret reports whether secret matches a hash produced by HashSecret
func CompareSecret(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
