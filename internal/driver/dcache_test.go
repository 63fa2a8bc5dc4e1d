package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ctruct/internal/diag"
	"ctruct/internal/source"
	"ctruct/internal/token"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	c, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("a+b")))
	key := cacheKey(file, false)

	var miss DiskPayload
	if ok, err := c.Get(key, &miss); ok || err != nil {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	res := tokenizeFile(context.Background(), file, Options{MaxDiagnostics: 4})
	if err := c.Put(key, tokensToPayload(key, 3, false, &res)); err != nil {
		t.Fatalf("put: %v", err)
	}
	var got DiskPayload
	ok, err := c.Get(key, &got)
	if !ok || err != nil {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	toks := payloadToTokens(&got, key, 3)
	if len(toks) != len(res.Tokens) {
		t.Fatalf("tokens=%v, want %v", toks, res.Tokens)
	}
	for i := range toks {
		if toks[i] != res.Tokens[i] {
			t.Errorf("tok[%d]=%v, want %v", i, toks[i], res.Tokens[i])
		}
	}
	if payloadToTokens(&got, key, 2) != nil {
		t.Fatalf("size mismatch must invalidate payload")
	}
	if payloadToTokens(&got, cacheKey(file, true), 3) != nil {
		t.Fatalf("key mismatch must invalidate payload")
	}
}

func TestPayloadRejectsBadTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("a+b")))
	key := cacheKey(file, false)
	res := tokenizeFile(context.Background(), file, Options{MaxDiagnostics: 4})

	tests := []struct {
		name   string
		mutate func(ct *cachedToken)
	}{
		{"kind out of range", func(ct *cachedToken) { ct.Kind = uint8(token.KindCount) }},
		{"max kind", func(ct *cachedToken) { ct.Kind = 0xff }},
		{"nil kind", func(ct *cachedToken) { ct.Kind = uint8(token.Nil) }},
		{"zero length", func(ct *cachedToken) { ct.Len = 0 }},
		{"past end", func(ct *cachedToken) { ct.Pos = 3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := tokensToPayload(key, 3, false, &res)
			tt.mutate(&payload.Tokens[1])
			if toks := payloadToTokens(payload, key, 3); toks != nil {
				t.Fatalf("corrupted payload accepted: %v", toks)
			}
		})
	}
	if payloadToTokens(tokensToPayload(key, 3, false, &res), key, 3) == nil {
		t.Fatalf("intact payload rejected")
	}
}

func TestCacheKeyDependsOnMode(t *testing.T) {
	fs := source.NewFileSet()
	a := fs.Get(fs.AddVirtual("a.c", []byte("x")))
	b := fs.Get(fs.AddVirtual("b.c", []byte("x")))
	if cacheKey(a, false) != cacheKey(b, false) {
		t.Fatalf("same content must share a key")
	}
	if cacheKey(a, false) == cacheKey(a, true) {
		t.Fatalf("merge mode must change the key")
	}
}

func TestTokenizeUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "char *s = u8\"x\";\n")
	c, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{MaxDiagnostics: 4, Cache: c}

	first, err := Tokenize(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Cached {
		t.Fatalf("first run cannot be cached")
	}
	second, err := Tokenize(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.Cached {
		t.Fatalf("second run must hit the cache")
	}
	if len(first.Tokens) != len(second.Tokens) || first.Consumed != second.Consumed {
		t.Fatalf("cached result differs: %v vs %v", first.Tokens, second.Tokens)
	}
	for i := range first.Tokens {
		if first.Tokens[i] != second.Tokens[i] {
			t.Fatalf("tok[%d] %v != %v", i, first.Tokens[i], second.Tokens[i])
		}
	}
}

func TestTokenizeSkipsCacheWithDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "x = \"open\n")
	c, err := OpenDiskCacheAt(filepath.Join(dir, ".cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{MaxDiagnostics: 4, Cache: c}
	for range 2 {
		res, err := Tokenize(context.Background(), path, opts)
		if err != nil {
			t.Fatal(err)
		}
		if res.Cached {
			t.Fatalf("files with diagnostics must not be cached")
		}
		if res.Bag.Len() != 1 || res.Bag.Items()[0].Code != diag.LexUnterminatedString {
			t.Fatalf("diagnostics=%+v", res.Bag.Items())
		}
	}
}

func TestCorruptCacheEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.c", []byte("a")))
	key := cacheKey(file, false)
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte{0xc1}, 0o600); err != nil {
		t.Fatal(err)
	}

	res := tokenizeFile(context.Background(), file, Options{MaxDiagnostics: 4, Cache: c})
	if res.Cached || len(res.Tokens) != 1 {
		t.Fatalf("corrupt entry must fall back to lexing: %+v", res)
	}
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOCacheFailed || items[0].Severity != diag.SevWarning {
		t.Fatalf("diagnostics=%+v", items)
	}
}

func TestDropAll(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")
	c, err := OpenDiskCacheAt(root)
	if err != nil {
		t.Fatal(err)
	}
	var key Digest
	key[0] = 1
	if err := c.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion}); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Fatalf("cache dir still exists: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("second drop: %v", err)
	}
	var nilCache *DiskCache
	if err := nilCache.Put(key, nil); err != nil {
		t.Fatal(err)
	}
}
