// SPDX-License-Identifier: MIT

package algebra

import (
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/clifford/blade"
)

// Algebra is a Clifford algebra instance: one immutable signature plus the
// product engine. Algebras are safe for concurrent use; the only mutable
// state is the optional reduction memo, guarded by an RWMutex.
type Algebra struct {
	sig blade.Signature

	mu   sync.RWMutex
	memo map[string]memoEntry // nil when memoization is disabled
}

// memoEntry caches one blade.Reduce result keyed by the raw index sequence.
// Valid for the algebra's lifetime because the signature is immutable.
type memoEntry struct {
	sign int
	b    blade.Blade
}

// Option configures an Algebra at construction.
type Option func(*Algebra)

// WithMemoization enables caching of blade reductions keyed by the raw
// index sequence. Purely a performance optimization: results are identical
// with and without it.
func WithMemoization() Option {
	return func(a *Algebra) { a.memo = make(map[string]memoEntry) }
}

// New validates the signature (p,q) and returns an algebra bound to it.
// Returns blade.ErrBadSignature when p or q is negative.
func New(p, q int, opts ...Option) (*Algebra, error) {
	sig, err := blade.NewSignature(p, q)
	if err != nil {
		return nil, err
	}
	a := &Algebra{sig: sig}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Signature returns the algebra's immutable signature.
func (a *Algebra) Signature() blade.Signature { return a.sig }

// reduce canonicalizes a raw index sequence, consulting the memo when
// enabled.
func (a *Algebra) reduce(indices []int) (int, blade.Blade, error) {
	if a.memo == nil {
		return blade.Reduce(a.sig, indices)
	}

	key := rawKey(indices)
	a.mu.RLock()
	entry, ok := a.memo[key]
	a.mu.RUnlock()
	if ok {
		return entry.sign, entry.b, nil
	}

	sign, b, err := blade.Reduce(a.sig, indices)
	if err != nil {
		return 0, blade.Blade{}, err
	}
	a.mu.Lock()
	a.memo[key] = memoEntry{sign: sign, b: b}
	a.mu.Unlock()

	return sign, b, nil
}

// rawKey encodes a raw (order-significant) index sequence as a map key.
func rawKey(indices []int) string {
	parts := make([]string, len(indices))
	for i, v := range indices {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ".")
}
