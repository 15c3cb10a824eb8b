package device

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// countingBackend records how many lookups it served.
type countingBackend struct {
	mu     sync.Mutex
	calls  int
	vendor string
	err    error
}

func (b *countingBackend) Lookup(addr string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return b.vendor, b.err
}

func (b *countingBackend) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestResolver_CachesPerPrefix(t *testing.T) {
	backend := &countingBackend{vendor: "Acme Ltd"}
	r := NewResolver(backend)

	// Two addresses sharing a prefix must hit the backend once.
	if got := r.Resolve("AA:BB:CC:11:22:33"); got != "Acme Ltd" {
		t.Errorf("Resolve = %q, want Acme Ltd", got)
	}
	if got := r.Resolve("AA:BB:CC:44:55:66"); got != "Acme Ltd" {
		t.Errorf("Resolve = %q, want Acme Ltd", got)
	}
	if backend.count() != 1 {
		t.Errorf("backend called %d times, want 1", backend.count())
	}

	// A different prefix triggers a second lookup.
	r.Resolve("DD:EE:FF:11:22:33")
	if backend.count() != 2 {
		t.Errorf("backend called %d times, want 2", backend.count())
	}
}

func TestResolver_FailureCachedAsUnknown(t *testing.T) {
	backend := &countingBackend{err: errors.New("database unavailable")}
	r := NewResolver(backend)

	if got := r.Resolve("AA:BB:CC:11:22:33"); got != VendorUnknown {
		t.Errorf("Resolve after backend error = %q, want %q", got, VendorUnknown)
	}
	// The failure is cached; the backend is not retried.
	r.Resolve("AA:BB:CC:11:22:33")
	if backend.count() != 1 {
		t.Errorf("backend called %d times after failure, want 1", backend.count())
	}
}

func TestResolver_EmptyResultIsUnknown(t *testing.T) {
	r := NewResolver(&countingBackend{vendor: ""})
	if got := r.Resolve("AA:BB:CC:11:22:33"); got != VendorUnknown {
		t.Errorf("Resolve of unrecognized prefix = %q, want %q", got, VendorUnknown)
	}
}

func TestResolver_NilBackend(t *testing.T) {
	r := NewResolver(nil)
	if got := r.Resolve("AA:BB:CC:11:22:33"); got != VendorUnknown {
		t.Errorf("Resolve with nil backend = %q, want %q", got, VendorUnknown)
	}
}

func TestResolver_EmptyAddress(t *testing.T) {
	backend := &countingBackend{vendor: "Acme Ltd"}
	r := NewResolver(backend)
	if got := r.Resolve(""); got != "" {
		t.Errorf("Resolve of empty address = %q, want empty", got)
	}
	if backend.count() != 0 {
		t.Errorf("backend called %d times for empty address, want 0", backend.count())
	}
}

// stallingBackend never answers within the test's lifetime.
type stallingBackend struct{}

func (stallingBackend) Lookup(addr string) (string, error) {
	time.Sleep(10 * time.Second)
	return "too late", nil
}

func TestResolver_TimeoutFallsBackToUnknown(t *testing.T) {
	r := NewResolver(stallingBackend{})
	r.timeout = 20 * time.Millisecond

	start := time.Now()
	got := r.Resolve("AA:BB:CC:11:22:33")
	if got != VendorUnknown {
		t.Errorf("Resolve of stalled backend = %q, want %q", got, VendorUnknown)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Resolve blocked %v, want bounded by timeout", elapsed)
	}

	// Timeout outcome is cached too.
	if got := r.Resolve("AA:BB:CC:44:55:66"); got != VendorUnknown {
		t.Errorf("cached timeout Resolve = %q, want %q", got, VendorUnknown)
	}
}
