package device

import (
	"errors"
	"sync"
	"time"
)

// VendorUnknown is cached for prefixes the backend cannot resolve, so
// a failing lookup is never retried for the same prefix.
const VendorUnknown = "Unknown"

// defaultLookupTimeout bounds a single backend lookup. A backend that
// has not answered by then degrades to VendorUnknown.
const defaultLookupTimeout = 2 * time.Second

var errLookupTimeout = errors.New("vendor lookup timed out")

// Backend resolves a hardware address to a manufacturer name. It may
// be slow or unavailable; the Resolver bounds and caches every call.
type Backend interface {
	Lookup(addr string) (string, error)
}

// Resolver caches vendor names keyed by the three-octet address
// prefix. Entries live for the process lifetime; a given prefix hits
// the backend at most once, whatever the outcome. Safe for concurrent
// use; the internal lock is independent of the store lock.
type Resolver struct {
	mu      sync.Mutex
	backend Backend
	timeout time.Duration
	cache   map[string]string
}

// NewResolver creates a Resolver over the given backend. A nil backend
// is allowed: every resolution degrades to VendorUnknown.
func NewResolver(backend Backend) *Resolver {
	return &Resolver{
		backend: backend,
		timeout: defaultLookupTimeout,
		cache:   make(map[string]string),
	}
}

// Resolve returns the vendor name for a normalized address, or "" when
// the address yields no usable prefix. Cache misses consult the
// backend once; errors, empty results and timeouts all cache
// VendorUnknown.
func (r *Resolver) Resolve(addr string) string {
	prefix := VendorPrefix(addr)
	if prefix == "" {
		return ""
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if vendor, ok := r.cache[prefix]; ok {
		return vendor
	}

	vendor := VendorUnknown
	if r.backend != nil {
		if v, err := r.lookup(addr); err == nil && v != "" {
			vendor = v
		}
	}
	r.cache[prefix] = vendor
	return vendor
}

// lookup runs one backend call bounded by the resolver timeout. A late
// result is discarded; the buffered channel lets the goroutine finish.
func (r *Resolver) lookup(addr string) (string, error) {
	type result struct {
		vendor string
		err    error
	}

	ch := make(chan result, 1)
	go func() {
		v, err := r.backend.Lookup(addr)
		ch <- result{vendor: v, err: err}
	}()

	select {
	case res := <-ch:
		return res.vendor, res.err
	case <-time.After(r.timeout):
		return "", errLookupTimeout
	}
}
