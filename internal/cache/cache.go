// Package cache is the on-device key-value cache behind "Clear cache".
// Each key is stored as one file under the cache directory.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Subdirectories of the root owned by the cache. Nothing else under the
// root is measured or removed, so the root may be shared.
const (
	kvDir      = "kv"
	stagingDir = "staging"
)

var ownedDirs = []string{kvDir, stagingDir}

// Cache stores opaque values on disk.
type Cache struct {
	dir string
}

// New returns a cache rooted at dir. The directory is created lazily.
func New(dir string) (*Cache, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("cache dir is empty")
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, kvDir, hex.EncodeToString(sum[:]))
}

// Put stores value under key.
func (c *Cache) Put(key string, value []byte) error {
	p := c.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".put-*")
	if err != nil {
		return fmt.Errorf("create cache entry: %w", err)
	}
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close cache entry: %w", err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// Get returns the value for key and whether it was present.
func (c *Cache) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read cache entry: %w", err)
	}
	return data, true, nil
}

// Size returns the total bytes held by the cache.
func (c *Cache) Size() (int64, error) {
	var total int64
	for _, name := range ownedDirs {
		n, err := dirSize(filepath.Join(c.dir, name))
		if err != nil {
			return 0, fmt.Errorf("measure cache: %w", err)
		}
		total += n
	}
	return total, nil
}

func dirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total, err
}

// Clear deletes the cache's own directories and returns the bytes freed.
// The root and anything else stored in it are left alone.
func (c *Cache) Clear() (int64, error) {
	size, err := c.Size()
	if err != nil {
		return 0, err
	}
	for _, name := range ownedDirs {
		if err := os.RemoveAll(filepath.Join(c.dir, name)); err != nil {
			return 0, fmt.Errorf("clear cache: %w", err)
		}
	}
	return size, nil
}

// Stage creates a temporary file inside the cache for in-flight work such
// as picture uploads. The caller removes it.
func (c *Cache) Stage(pattern string) (*os.File, error) {
	dir := filepath.Join(c.dir, stagingDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create staging file: %w", err)
	}
	return f, nil
}

// FormatBytes renders n using binary units.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
