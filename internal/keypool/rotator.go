// Package keypool rotates generation-API credentials with failover.
package keypool

import (
	"sync"
	"time"
)

type credential struct {
	secret   string
	failedAt time.Time
}

// Rotator hands out credentials round-robin, skipping ones marked failed.
// The rotation cursor is monotonic and is never reset, even when the set of
// healthy credentials shrinks.
type Rotator struct {
	mu       sync.Mutex
	pool     []*credential
	cursor   int
	cooldown time.Duration
	now      func() time.Time
}

// New creates a rotator over the given secrets. With cooldown <= 0 a failed
// credential stays out of rotation for the process lifetime; otherwise it
// re-enters rotation once the cooldown has elapsed.
func New(secrets []string, cooldown time.Duration) *Rotator {
	pool := make([]*credential, len(secrets))
	for i, s := range secrets {
		pool[i] = &credential{secret: s}
	}
	return &Rotator{pool: pool, cooldown: cooldown, now: time.Now}
}

// Next returns the next healthy credential. The second return value is false
// when every credential has failed.
func (r *Rotator) Next() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var available []*credential
	for _, c := range r.pool {
		if r.healthy(c) {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return "", false
	}

	c := available[r.cursor%len(available)]
	r.cursor++
	return c.secret, true
}

// MarkFailed takes the credential out of rotation. Unknown secrets are ignored.
func (r *Rotator) MarkFailed(secret string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.pool {
		if c.secret == secret {
			c.failedAt = r.now()
			return
		}
	}
}

// Healthy returns the number of credentials currently in rotation.
func (r *Rotator) Healthy() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, c := range r.pool {
		if r.healthy(c) {
			n++
		}
	}
	return n
}

func (r *Rotator) healthy(c *credential) bool {
	if c.failedAt.IsZero() {
		return true
	}
	if r.cooldown <= 0 {
		return false
	}
	return r.now().Sub(c.failedAt) >= r.cooldown
}

// Redact returns the loggable prefix of a credential secret.
func Redact(secret string) string {
	if len(secret) <= 10 {
		return secret + "***"
	}
	return secret[:10] + "***"
}
