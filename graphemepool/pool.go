// Package graphemepool provides process-wide interning of multi-byte
// grapheme cluster identities. Equal byte sequences share a handle,
// so buffers can compare and hash clusters by a small uint32 instead of a
// byte slice, keeping the per-line cluster cache compact.
//
// The grapheme engine (package grapheme) is the pool's only caller: its
// FindGraphemeInfo already walks a string cluster by cluster to compute
// width, so it interns each cluster it visits rather than handing the
// whole string to a second, independent segmenter here.
//
// The pool is a singleton, lazily initialized on first use, guarded by a
// single mutex; all operations (intern, lookup) are short-lived. Teardown
// (Reset) is only valid after every buffer referencing it has been
// destroyed.
package graphemepool

import "sync"

// Handle is an opaque id into the pool identifying a cluster's canonical
// byte sequence and precomputed width.
type Handle uint32

type entry struct {
	bytes    string
	width    uint8
	refCount uint32
}

// Pool is the process-wide interning store. The zero value is not usable;
// construct with New, or use the package-level Global for the process
// singleton shared across all buffers.
type Pool struct {
	mu      sync.Mutex
	byBytes map[string]Handle
	entries []entry
}

// New creates an independent pool. Most callers should use Global instead;
// New exists for tests that want isolation from other tests' interning.
func New() *Pool {
	return &Pool{byBytes: make(map[string]Handle)}
}

var globalOnce sync.Once
var global *Pool

// Global returns the process-wide singleton pool, initializing it on first
// call.
func Global() *Pool {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// Intern returns the handle for canonicalBytes, creating a new entry (with
// refcount 1) if this is the first time the pool has seen that byte
// sequence, or incrementing the refcount of an existing entry.
func (p *Pool) Intern(canonicalBytes string, width uint8) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	if h, ok := p.byBytes[canonicalBytes]; ok {
		p.entries[h].refCount++
		return h
	}

	h := Handle(len(p.entries))
	p.entries = append(p.entries, entry{bytes: canonicalBytes, width: width, refCount: 1})
	p.byBytes[canonicalBytes] = h
	return h
}

// Lookup returns the canonical bytes and width for handle h.
func (p *Pool) Lookup(h Handle) (bytes string, width uint8, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if int(h) < 0 || int(h) >= len(p.entries) {
		return "", 0, false
	}
	e := p.entries[h]
	if e.refCount == 0 {
		return "", 0, false
	}
	return e.bytes, e.width, true
}

// Release decrements the refcount for h, acquired via Intern. It does not
// compact the entries slice (handles must remain stable for the lifetime of
// the pool); a fully released entry simply becomes unreachable via Lookup.
func (p *Pool) Release(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if int(h) < 0 || int(h) >= len(p.entries) {
		return
	}
	if p.entries[h].refCount > 0 {
		p.entries[h].refCount--
	}
}

// Len reports the number of distinct interned cluster identities (including
// fully released ones, since handles are never reused).
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Reset clears the pool. Only valid once every buffer holding a reference
// into this pool has been destroyed — callers that violate this will see
// dangling handles resolve to ok=false on the next Lookup.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byBytes = make(map[string]Handle)
	p.entries = nil
}
