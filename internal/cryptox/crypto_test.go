package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashUsername_KnownValue(t *testing.T) {
	// base64(sha256("testing")) — the storage key the browser client used
	// for the same username, so records stay compatible across runs.
	assert.Equal(t, "z4DNiu1ILV0VJ9fccvzv+E5jJlkoSER9LcCw6H38mpA=", HashUsername("testing"))
}

func TestHashUsername_Deterministic(t *testing.T) {
	assert.Equal(t, HashUsername("marcus7777"), HashUsername("marcus7777"))
	assert.NotEqual(t, HashUsername("marcus7777"), HashUsername("marcus7778"))
}

func TestDeriveKey_Deterministic(t *testing.T) {
	key1 := DeriveKey("testing", "m0nk3y123")
	key2 := DeriveKey("testing", "m0nk3y123")

	require.Len(t, key1, 32)
	assert.Equal(t, key1, key2)
}

func TestDeriveKey_UsernameSeparatesKeys(t *testing.T) {
	// Same password under different usernames must not share a key.
	key1 := DeriveKey("alice", "hunter2")
	key2 := DeriveKey("bob", "hunter2")
	assert.NotEqual(t, key1, key2)
}

func TestDeriveKey_PasswordSeparatesKeys(t *testing.T) {
	key1 := DeriveKey("alice", "hunter2")
	key2 := DeriveKey("alice", "hunter3")
	assert.NotEqual(t, key1, key2)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	type payload struct {
		Username string   `json:"username"`
		Token    string   `json:"token"`
		Roles    []string `json:"roles"`
	}

	key := DeriveKey("testing", "m0nk3y123")
	in := payload{Username: "testing", Token: "abc", Roles: []string{"admin"}}

	ciphertext, iv, err := Encrypt(in, key)
	require.NoError(t, err)
	require.Len(t, iv, 12)

	var out payload
	require.NoError(t, Decrypt(ciphertext, iv, key, &out))
	assert.Equal(t, in, out)
}

func TestEncrypt_FreshIVPerCall(t *testing.T) {
	key := DeriveKey("testing", "m0nk3y123")

	_, iv1, err := Encrypt("same payload", key)
	require.NoError(t, err)
	_, iv2, err := Encrypt("same payload", key)
	require.NoError(t, err)

	assert.NotEqual(t, iv1, iv2)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	ciphertext, iv, err := Encrypt("secret", DeriveKey("testing", "m0nk3y123"))
	require.NoError(t, err)

	var out string
	err = Decrypt(ciphertext, iv, DeriveKey("testing", "wrongpass"), &out)
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestDecrypt_TamperedCiphertextFails(t *testing.T) {
	key := DeriveKey("testing", "m0nk3y123")
	ciphertext, iv, err := Encrypt("secret", key)
	require.NoError(t, err)

	ciphertext[0] ^= 0xff

	var out string
	require.Error(t, Decrypt(ciphertext, iv, key, &out))
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	assert.Equal(t, []byte{0, 0, 0}, b)

	Wipe(nil) // must not panic
}
