package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ctruct/internal/token"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит токены чистых файлов (без диагностик) по хешу содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedToken is the compact on-disk form of token.Token.
type cachedToken struct {
	_msgpack struct{} `msgpack:",as_array"`
	Kind     uint8
	Pos      uint32
	Len      uint32
}

// DiskPayload stores one tokenized file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	ContentHash Digest
	Size        uint32
	NoMerge     bool

	Tokens    []cachedToken
	Consumed  uint32
	Truncated bool
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cache dir: %w", err)
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens (and creates) a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первому байту, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "tokens", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
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
	renamed := false
	defer func() {
		if renamed {
			return
		}
		_ = f.Close()
		if rmErr := os.Remove(f.Name()); rmErr != nil && err == nil {
			err = rmErr
		}
	}()

	enc := msgpack.NewEncoder(f)
	enc.UseCompactInts(true)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Get reads and deserializes a payload from the disk cache.
// A missing entry is (false, nil).
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := msgpack.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог, затем удалим, чтобы параллельный процесс не увидел полупустой кеш
	old := c.dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

func tokensToPayload(key Digest, size uint32, noMerge bool, res *FileResult) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		ContentHash: key,
		Size:        size,
		NoMerge:     noMerge,
		Tokens:      make([]cachedToken, len(res.Tokens)),
		Consumed:    res.Consumed,
		Truncated:   res.Truncated,
	}
	for i, tok := range res.Tokens {
		payload.Tokens[i] = cachedToken{Kind: uint8(tok.Kind), Pos: tok.Pos, Len: tok.Len}
	}
	return payload
}

// payloadToTokens returns nil when the payload does not belong to key,
// references bytes outside the file or holds a kind the lexer never emits.
func payloadToTokens(payload *DiskPayload, key Digest, size uint32) []token.Token {
	if payload == nil || payload.Schema != diskCacheSchemaVersion ||
		payload.ContentHash != key || payload.Size != size || payload.Consumed > size {
		return nil
	}
	toks := make([]token.Token, len(payload.Tokens))
	for i, ct := range payload.Tokens {
		if uint64(ct.Pos)+uint64(ct.Len) > uint64(size) || ct.Len == 0 {
			return nil
		}
		if ct.Kind == uint8(token.Nil) || ct.Kind >= uint8(token.KindCount) {
			return nil
		}
		toks[i] = token.Token{Kind: token.Kind(ct.Kind), Pos: ct.Pos, Len: ct.Len}
	}
	return toks
}
