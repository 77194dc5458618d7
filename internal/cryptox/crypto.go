// Package cryptox implements the cryptographic primitives behind the offline
// session cache: the username digest used as the cache lookup key, the
// credential-based key derivation, and the AES-GCM record codec.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"

	"golang.org/x/crypto/argon2"
)

// HashUsername maps a username to its cache storage key. The digest is
// deterministic so that an offline login can locate the record written by an
// earlier online login, and one-way so the store never holds the username
// itself.
func HashUsername(username string) string {
	sum := sha256.Sum256([]byte(username))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// DeriveKey derives the 32-byte AES-256 key protecting a user's cached
// session. The password is stretched with Argon2id; the salt is a digest of
// the username, so two users sharing a password still derive different keys.
// Purely a function of its inputs: no randomness, no storage, no network.
func DeriveKey(username, password string) []byte {
	salt := sha256.Sum256([]byte(username))
	return argon2.IDKey([]byte(password), salt[:], 1, 64*1024, 4, 32)
}

// Encrypt serializes v to JSON and encrypts it with AES-GCM under key.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A new random
// 12-byte IV is generated for every call and returned alongside the
// ciphertext; the pair must be stored together because decryption needs both.
func Encrypt(v any, key []byte) (ciphertext, iv []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}

	iv = make([]byte, 12)
	if _, err := rand.Read(iv); err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, iv, plaintext, nil)
	return ciphertext, iv, nil
}

// Decrypt reverses Encrypt: it opens ciphertext with the given key and IV and
// unmarshals the recovered JSON into v. A wrong key, a wrong IV, or tampered
// ciphertext all fail GCM authentication and return an error rather than
// producing garbage output.
func Decrypt(ciphertext, iv, key []byte, v any) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return err
	}

	return json.Unmarshal(plaintext, v)
}

// Wipe overwrites b with zeros. Use it to drop key material from memory as
// soon as an authentication operation finishes.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
