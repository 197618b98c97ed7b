// Package utils provides credential hashing and small input helpers.
package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters. The salt is random per user; iterations keep the hash
// deliberately slow.
const (
	saltLength = 16
	iterations = 10_000
	keyLength  = 32
)

// HashPassword derives a PBKDF2-HMAC-SHA256 hash from a plain password with a
// fresh random salt. The result encodes salt and key as base64 separated by
// '$' so the hash stays verifiable.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(salt) + "$" +
		base64.StdEncoding.EncodeToString(key), nil
}

// CheckPasswordHash reports whether the plain password matches a hash
// produced by HashPassword.
func CheckPasswordHash(password, hash string) bool {
	saltPart, keyPart, ok := strings.Cut(hash, "$")
	if !ok {
		return false
	}
	salt, err := base64.StdEncoding.DecodeString(saltPart)
	if err != nil {
		return false
	}
	want, err := base64.StdEncoding.DecodeString(keyPart)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// IsEmail returns true if the string is a valid email address.
func IsEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
