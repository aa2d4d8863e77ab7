// Package cryptox implements password hashing for locally cached
// credentials. Passwords are stretched with argon2id over a random salt and
// stored in a self-describing encoded form, so the same record supports
// offline verification long after the remote identity provider last saw it.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/levelup/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

func deriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// HashPassword derives a verifier from the password over a fresh random salt
// and returns it in the encoded form "argon2id$<hex salt>$<hex key>".
func HashPassword(password []byte) string {
	salt := common.GenerateRandByteArray(saltSize)
	key := deriveKey(password, salt)
	return fmt.Sprintf("argon2id$%s$%s", hex.EncodeToString(salt), hex.EncodeToString(key))
}

// VerifyPassword re-derives the key from the candidate password and the
// stored salt and compares it to the stored key in constant time.
// Malformed encoded values verify as false, never as an error.
func VerifyPassword(encoded string, password []byte) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	key, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	candidate := deriveKey(password, salt)
	return subtle.ConstantTimeCompare(key, candidate) == 1
}
