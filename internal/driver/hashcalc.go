package driver

import (
	"crypto/sha256"
	"encoding/binary"

	"ctruct/internal/source"
)

// Digest is a SHA-256 value used as a cache key.
type Digest [32]byte

// combineDigest: H(content || salt1 || salt2 ...). Порядок salt значим.
func combineDigest(content Digest, salts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, s := range salts {
		_, _ = h.Write(s)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey зависит от содержимого файла, версии схемы и режима склейки.
// Путь в ключ не входит: одинаковые файлы делят запись.
func cacheKey(file *source.File, noMerge bool) Digest {
	var schema [2]byte
	binary.BigEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	mode := []byte{0}
	if noMerge {
		mode[0] = 1
	}
	return combineDigest(Digest(file.Hash), schema[:], mode)
}
