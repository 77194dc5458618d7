// Package cache persists an encrypted copy of the authenticated session so a
// returning user can log in without network access. Records are keyed by the
// one-way username digest; the ciphertext and its IV live in two adjacent
// storage entries.
package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/kano-labs/kano-api-client/internal/cryptox"
	"github.com/kano-labs/kano-api-client/pkg/storage"
)

var (
	// ErrNoRecord means no cached session exists for the storage key.
	ErrNoRecord = errors.New("no cached session")

	// ErrDecrypt means a record exists but could not be authenticated with
	// the supplied key (wrong credentials or corrupted data). Callers must
	// surface it exactly like ErrNoRecord so the two cases cannot be told
	// apart from the outside.
	ErrDecrypt = errors.New("cannot decrypt cached session")
)

const ivSuffix = ":iv"

// Cache encrypts and persists session records through a storage.Store.
type Cache struct {
	store storage.Store
}

func New(store storage.Store) *Cache {
	return &Cache{store: store}
}

// Save encrypts v under key and writes the record for storageKey, replacing
// any previous one. Every call uses a fresh IV.
func (c *Cache) Save(ctx context.Context, storageKey string, key []byte, v any) error {
	ciphertext, iv, err := cryptox.Encrypt(v, key)
	if err != nil {
		return fmt.Errorf("encrypting session: %w", err)
	}
	if err := c.store.Set(ctx, storageKey, ciphertext); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	if err := c.store.Set(ctx, storageKey+ivSuffix, iv); err != nil {
		return fmt.Errorf("storing session iv: %w", err)
	}
	return nil
}

// Load reads the record for storageKey and decrypts it into v. It returns
// ErrNoRecord when either entry is absent and ErrDecrypt when authentication
// of the ciphertext fails.
func (c *Cache) Load(ctx context.Context, storageKey string, key []byte, v any) error {
	ciphertext, err := c.store.Get(ctx, storageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNoRecord
		}
		return fmt.Errorf("reading session: %w", err)
	}

	iv, err := c.store.Get(ctx, storageKey+ivSuffix)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNoRecord
		}
		return fmt.Errorf("reading session iv: %w", err)
	}

	if err := cryptox.Decrypt(ciphertext, iv, key, v); err != nil {
		return ErrDecrypt
	}
	return nil
}

// Clear removes both entries for storageKey. Logout never calls this; it
// exists for explicit cache invalidation only.
func (c *Cache) Clear(ctx context.Context, storageKey string) error {
	if err := c.store.Remove(ctx, storageKey); err != nil {
		return err
	}
	return c.store.Remove(ctx, storageKey+ivSuffix)
}
