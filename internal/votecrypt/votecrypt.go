package votecrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// TokenSecretSize is the entropy of an issued voting token in bytes.
	TokenSecretSize = 32

	nonceSize = 32
)

// Encryptor seals and opens vote payloads with the server-held key. The key
// is the only input besides the plaintext; in particular the voter's token
// never feeds the cipher, which would open a correlation channel.
type Encryptor interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

type aesgcmEncryptor struct {
	aead cipher.AEAD
}

// NewEncryptor builds an AES-256-GCM encryptor from a hex-encoded 32-byte
// key.
func NewEncryptor(hexKey string) (Encryptor, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &aesgcmEncryptor{aead: aead}, nil
}

func (e *aesgcmEncryptor) Encrypt(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return e.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (e *aesgcmEncryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < e.aead.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:e.aead.NonceSize()]
	return e.aead.Open(nil, nonce, ciphertext[e.aead.NonceSize():], nil)
}

// GenerateTokenSecret returns a fresh voting token secret, hex-encoded.
func GenerateTokenSecret() (string, error) {
	secret := make([]byte, TokenSecretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", err
	}

	return hex.EncodeToString(secret), nil
}

// HashToken derives the one-way lookup hash stored in place of the secret.
func HashToken(secret string) string {
	sum := sha3.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// GenerateNonce returns fresh randomness for ballot content hashing, so two
// identical ciphertexts never share a hash.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, nonceSize)
	_, err := rand.Read(nonce)
	return nonce, err
}

// ContentHash derives a ballot's unique identity from what was cast, never
// from who cast it.
func ContentHash(topicID int64, ciphertext, nonce []byte, castAtUnixNano int64) string {
	d := sha3.New256()
	fmt.Fprintf(d, "%d|", topicID)
	d.Write(ciphertext)
	d.Write(nonce)
	fmt.Fprintf(d, "|%d", castAtUnixNano)
	return hex.EncodeToString(d.Sum(nil))
}
