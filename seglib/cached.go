package seglib

import (
	"github.com/patrickmn/go-cache"
)

// Cached memoizes another Segmenter per sentence. Shift logs repeat the same
// entries ("正常", "无异常") many times over a year.
type Cached struct {
	next   Segmenter
	memo   *cache.Cache
	hits   int
	misses int
}

// NewCached wraps next. Entries never expire and there is no janitor.
func NewCached(next Segmenter) *Cached {
	return &Cached{
		next: next,
		memo: cache.New(cache.NoExpiration, 0),
	}
}

// Cut implements Segmenter. The returned slice is the caller's to modify.
func (c *Cached) Cut(sentence string) []string {
	if sentence == "" {
		return nil
	}
	if v, found := c.memo.Get(sentence); found {
		c.hits++
		return clone(v.([]string))
	}
	c.misses++
	tokens := c.next.Cut(sentence)
	c.memo.Set(sentence, clone(tokens), cache.NoExpiration)
	return tokens
}

// Stats returns how many Cut calls were served from memory and how many were not
func (c *Cached) Stats() (hits, misses int) {
	return c.hits, c.misses
}

func clone(tokens []string) []string {
	if tokens == nil {
		return nil
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
