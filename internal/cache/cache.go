// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cache persists per-file lint results keyed by content digest, so
// unchanged files skip parsing on the next run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// Bump when the payload format changes; stale schemas read as misses.
const schemaVersion uint16 = 1

// Digest identifies file content.
type Digest [sha256.Size]byte

// DigestOf hashes a source buffer.
func DigestOf(src []byte) Digest {
	return sha256.Sum256(src)
}

// payload is the on-disk record for one file.
type payload struct {
	Schema      uint16
	Diagnostics []types.Diagnostic
}

// Cache stores lint results on disk, one msgpack file per content digest.
// Safe for concurrent use. A nil *Cache is a valid no-op cache.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// Open initializes a cache under $XDG_CACHE_HOME/<app> (falling back to
// ~/.cache/<app>).
func Open(app string) (*Cache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenAt(filepath.Join(base, app))
}

// OpenAt initializes a cache rooted at an explicit directory.
func OpenAt(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "results", hex.EncodeToString(key[:])+".mp")
}

// Get loads the diagnostics recorded for a digest. The bool reports whether
// a usable entry was found.
func (c *Cache) Get(key Digest) ([]types.Diagnostic, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var p payload
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return nil, false, err
	}
	if p.Schema != schemaVersion {
		return nil, false, nil
	}
	return p.Diagnostics, true, nil
}

// Put records the diagnostics for a digest, replacing the file atomically.
func (c *Cache) Put(key Digest, diags []types.Diagnostic) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	if err := msgpack.NewEncoder(f).Encode(payload{Schema: schemaVersion, Diagnostics: diags}); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, p); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing cache entry: %w", err)
	}
	return nil
}

// DropAll removes every cached entry.
func (c *Cache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "results"))
}
