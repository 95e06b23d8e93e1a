package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/stylescan/stylescan/domain"
)

// AnalysisCache is a process-wide, content-hash-keyed cache of analysis
// results. It lives outside internal/analyzer, which per spec.md §9 keeps no
// global mutable state of its own; grounded on pyscn's parse_cache.go
// (sync.Map-free but conceptually the same: populate-then-reuse), adapted to
// key on a stable hash of (corpus, config) rather than a file path, since a
// single corpus can be re-analyzed under different configs within one
// `watch`/`serve` session.
type AnalysisCache struct {
	results sync.Map // string -> *domain.AnalysisResult
}

// NewAnalysisCache creates an empty cache.
func NewAnalysisCache() *AnalysisCache {
	return &AnalysisCache{}
}

// Key computes the stable cache key for a (corpus, config) pair: a sha256
// digest over a canonical JSON encoding of both.
func (c *AnalysisCache) Key(corpus domain.StyleCorpus, config domain.AnalysisConfig) (string, error) {
	data, err := json.Marshal(struct {
		Corpus domain.StyleCorpus    `json:"corpus"`
		Config domain.AnalysisConfig `json:"config"`
	}{Corpus: corpus, Config: config})
	if err != nil {
		return "", domain.NewInternalError("failed to hash cache key", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Get retrieves a cached result by key.
func (c *AnalysisCache) Get(key string) (*domain.AnalysisResult, bool) {
	v, ok := c.results.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*domain.AnalysisResult), true
}

// Put stores a result under key. Results are treated as immutable once
// stored, so concurrent readers never observe a partially-written value.
func (c *AnalysisCache) Put(key string, result *domain.AnalysisResult) {
	c.results.Store(key, result)
}

// Invalidate drops every cached entry, used when the corpus on disk changes
// underneath a running `watch`/`serve` session.
func (c *AnalysisCache) Invalidate() {
	c.results.Range(func(k, _ interface{}) bool {
		c.results.Delete(k)
		return true
	})
}
