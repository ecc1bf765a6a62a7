// Package cryptox seals backup files with a password. The key is derived
// with argon2id and the payload is encrypted with AES-256-GCM. A sealed file
// is a small JSON envelope so it can be recognised before asking for the
// password.
package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	sealedFormat  = "jobkeeper-sealed"
	sealedVersion = 1
	saltSize      = 16
)

var (
	ErrWrongPassword = errors.New("wrong password or damaged file")
	ErrNotSealed     = errors.New("data is not a sealed backup")
	ErrEmptyPassword = errors.New("empty password")
)

type envelope struct {
	Format     string `json:"format"`
	Version    int    `json:"version"`
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// DeriveKey turns a password and salt into a 32-byte AES key.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// Wipe overwrites b with zeros. Use it on passwords and keys once they are
// no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// newGCM wipes key after building the cipher.
func newGCM(key []byte) (cipher.AEAD, error) {
	defer Wipe(key)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with a key derived from password and returns the
// JSON envelope.
func Seal(plaintext, password []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ErrEmptyPassword
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	aead, err := newGCM(DeriveKey(password, salt))
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	env := envelope{
		Format:     sealedFormat,
		Version:    sealedVersion,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, []byte(sealedFormat)),
	}
	return json.MarshalIndent(env, "", "  ")
}

func decodeEnvelope(data []byte) (envelope, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return envelope{}, false
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return envelope{}, false
	}
	return env, env.Format == sealedFormat
}

// IsSealed reports whether data looks like a sealed envelope.
func IsSealed(data []byte) bool {
	_, ok := decodeEnvelope(data)
	return ok
}

// Open decrypts a sealed envelope.
func Open(data, password []byte) ([]byte, error) {
	env, ok := decodeEnvelope(data)
	if !ok {
		return nil, ErrNotSealed
	}
	if env.Version != sealedVersion {
		return nil, fmt.Errorf("unsupported sealed backup version %d", env.Version)
	}

	aead, err := newGCM(DeriveKey(password, env.Salt))
	if err != nil {
		return nil, err
	}
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrWrongPassword
	}
	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, []byte(sealedFormat))
	if err != nil {
		return nil, ErrWrongPassword
	}
	return plaintext, nil
}
