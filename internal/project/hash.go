package project

import (
	"crypto/sha256"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// HashString hashes an arbitrary salt (tool version, option set).
func HashString(s string) Digest {
	return sha256.Sum256([]byte(s))
}

// Combine строит составной хеш: H( content || salt1 || salt2 ... ).
// Ключ кэша диагностик: содержимое файла плюс версия и параметры фронтенда.
func Combine(content Digest, salts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range salts {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
