package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedProvider wraps another Provider with an in-process cache keyed on
// the input text. Repeated questions (FAQ traffic is highly repetitive) skip
// the upstream embedding call entirely.
type CachedProvider struct {
	inner Provider
	cache *cache.Cache
}

var _ Provider = &CachedProvider{}

func NewCachedProvider(inner Provider) *CachedProvider {
	// Default expiration of 1 hour, purge every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CachedProvider{
		inner: inner,
		cache: c,
	}
}

func (p *CachedProvider) Dimension() int {
	return p.inner.Dimension()
}

func (p *CachedProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(text)
	if x, found := p.cache.Get(key); found {
		return x.([]float32), nil
	}

	vec, err := p.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, vec, cache.DefaultExpiration)
	return vec, nil
}

func (p *CachedProvider) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int

	for i, text := range texts {
		if x, found := p.cache.Get(cacheKey(text)); found {
			vectors[i] = x.([]float32)
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fresh, err := p.inner.EmbedBatch(ctx, missing)
	if err != nil {
		return nil, err
	}

	for j, vec := range fresh {
		vectors[missingIdx[j]] = vec
		p.cache.Set(cacheKey(missing[j]), vec, cache.DefaultExpiration)
	}

	return vectors, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
