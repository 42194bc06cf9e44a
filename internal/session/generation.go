package session

import "sync/atomic"

// Generations issues monotonically increasing request tokens. A result may
// only be applied while its token is still the latest one issued, so a slow
// response can never overwrite the result of a request issued after it.
type Generations struct {
	latest atomic.Uint64
}

// Next issues a new token.
func (g *Generations) Next() uint64 {
	return g.latest.Add(1)
}

// IsLatest reports whether gen is the most recently issued token.
func (g *Generations) IsLatest(gen uint64) bool {
	return g.latest.Load() == gen
}
