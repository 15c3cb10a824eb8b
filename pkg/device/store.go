package device

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultHistoryCap is the per-device signal history capacity when the
// caller does not configure one.
const DefaultHistoryCap = 60

// record is the store's per-device aggregate state. The address is
// immutable after creation; name and ssid are mutually exclusive
// because a record represents one device type at a time.
type record struct {
	devType   Type
	addr      string
	name      string // BLE advertised name
	ssid      string // Wi-Fi network name
	vendor    string
	signal    *int
	firstSeen int64
	lastSeen  int64
	history   []int
}

// Store is the concurrent map of normalized address to device record.
// Scan sources feed it through Update; readers take ordered value
// copies through Snapshot. All access is serialized through one mutex;
// both operations do only in-memory work under it.
type Store struct {
	mu         sync.Mutex
	records    map[string]*record
	historyCap int
	resolver   *Resolver
	now        func() time.Time
}

// NewStore creates a Store keeping up to historyCap signal samples per
// device. A non-positive capacity is a configuration error and fails
// here rather than at ingestion time. The resolver may be nil, in
// which case vendors stay unresolved.
func NewStore(historyCap int, resolver *Resolver) (*Store, error) {
	if historyCap <= 0 {
		return nil, fmt.Errorf("history capacity must be positive, got %d", historyCap)
	}
	return &Store{
		records:    make(map[string]*record),
		historyCap: historyCap,
		resolver:   resolver,
		now:        time.Now,
	}, nil
}

// Update ingests one observation. Observations whose address does not
// normalize to a non-empty string, or which carry no signal, are
// silently dropped: scan sources frequently emit partial data and
// dropping beats corrupting state. Update never fails and never
// blocks beyond the bounded vendor lookup.
func (s *Store) Update(obs Observation) {
	addr := NormalizeAddr(obs.Addr)
	if addr == "" || obs.Signal == nil {
		return
	}

	// Vendor resolution may hit an external backend, so it must not
	// run under the store lock. Peek, resolve, then apply.
	s.mu.Lock()
	rec, exists := s.records[addr]
	needVendor := !exists || rec.vendor == ""
	s.mu.Unlock()

	var vendor string
	if needVendor && s.resolver != nil {
		vendor = s.resolver.Resolve(addr)
	}

	signal := *obs.Signal
	now := s.now().Unix()

	s.mu.Lock()
	defer s.mu.Unlock()

	rec = s.records[addr]
	if rec == nil {
		rec = &record{
			addr:      addr,
			firstSeen: now,
			history:   make([]int, 0, s.historyCap),
		}
		s.records[addr] = rec
	}

	// Latest observation wins the classification, even across types.
	rec.devType = obs.Type
	if obs.Type == TypeWiFi {
		ssid := obs.SSID
		if ssid == "" {
			ssid = obs.Name
		}
		rec.ssid = ssid
		rec.name = ""
	} else {
		rec.name = obs.Name
		rec.ssid = ""
	}

	if rec.vendor == "" {
		rec.vendor = vendor
	}

	rec.signal = &signal
	rec.lastSeen = now

	if len(rec.history) == s.historyCap {
		copy(rec.history, rec.history[1:])
		rec.history[s.historyCap-1] = signal
	} else {
		rec.history = append(rec.history, signal)
	}
}

// Snapshot returns a point-in-time value copy of every record, ordered
// for presentation: Wi-Fi before BLE, then signal strength descending
// (missing signals sort last within their type), ties broken by
// address so repeated calls over unchanged input agree.
func (s *Store) Snapshot() []View {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]View, 0, len(s.records))
	for _, rec := range s.records {
		views = append(views, rec.view())
	}

	sort.Slice(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Type != b.Type {
			return a.Type == TypeWiFi
		}
		as, bs := signalRank(a.SignalDBM), signalRank(b.SignalDBM)
		if as != bs {
			return as > bs
		}
		return a.Addr < b.Addr
	})

	return views
}

// Len reports the current number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// signalRank orders signals strongest first; a missing signal is
// treated as maximally weak.
func signalRank(signal *int) int {
	if signal == nil {
		return -9999
	}
	return *signal
}

// view copies a record into its external form. Must be called with the
// store lock held.
func (r *record) view() View {
	name := r.name
	if name == "" {
		name = r.ssid
	}
	if name == "" {
		name = UnknownName
	}

	vendor := r.vendor
	if vendor == "" {
		vendor = VendorUnknown
	}

	var signal *int
	if r.signal != nil {
		v := *r.signal
		signal = &v
	}

	history := make([]int, len(r.history))
	copy(history, r.history)

	return View{
		Type:      r.devType,
		Addr:      r.addr,
		Name:      name,
		Vendor:    vendor,
		SignalDBM: signal,
		FirstSeen: r.firstSeen,
		LastSeen:  r.lastSeen,
		History:   history,
	}
}
