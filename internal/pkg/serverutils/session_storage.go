package serverutils

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cacheStorage adapts patrickmn/go-cache to fiber.Storage so the session
// middleware can keep its data in the same in-process cache used elsewhere.
type cacheStorage struct {
	cache *gocache.Cache
}

func NewCacheStorage(defaultExpiration, cleanupInterval time.Duration) *cacheStorage {
	return &cacheStorage{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *cacheStorage) Get(key string) ([]byte, error) {
	raw, found := s.cache.Get(key)
	if !found {
		return nil, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (s *cacheStorage) Set(key string, val []byte, exp time.Duration) error {
	if exp <= 0 {
		exp = gocache.NoExpiration
	}
	s.cache.Set(key, val, exp)
	return nil
}

func (s *cacheStorage) Delete(key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *cacheStorage) Reset() error {
	s.cache.Flush()
	return nil
}

func (s *cacheStorage) Close() error {
	return nil
}
