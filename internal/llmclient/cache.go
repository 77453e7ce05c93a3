package llmclient

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedClient serves repeated identical prompts from an LRU cache instead
// of re-invoking the backend. Only successful completions are cached.
type CachedClient struct {
	inner Client
	cache *lru.Cache[string, string]
}

func NewCachedClient(inner Client, size int) (*CachedClient, error) {
	if size <= 0 {
		size = 128
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedClient{inner: inner, cache: cache}, nil
}

func (c *CachedClient) Name() string { return c.inner.Name() + " (cached)" }

func (c *CachedClient) ChatCompletion(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	key := cacheKey(c.inner.Name(), messages, maxTokens)
	if resp, ok := c.cache.Get(key); ok {
		return resp, nil
	}
	resp, err := c.inner.ChatCompletion(ctx, messages, maxTokens)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, resp)
	return resp, nil
}

func cacheKey(name string, messages []Message, maxTokens int) string {
	h := sha256.New()
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(maxTokens)))
	for _, m := range messages {
		h.Write([]byte{0})
		h.Write([]byte(m.Role))
		h.Write([]byte{0})
		h.Write([]byte(m.Content))
	}
	return hex.EncodeToString(h.Sum(nil))
}
