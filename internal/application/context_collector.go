package application

import (
	"cmp"
	"container/heap"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
)

const (
	DefaultSessionTTL       = 30 * time.Minute
	DefaultMaxSessions      = 100
	DefaultContextSeparator = "\n\n"
)

type CollectorOption func(*ContextCollector)

func WithSessionTTL(ttl time.Duration) CollectorOption {
	return func(c *ContextCollector) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithMaxSessions(limit int) CollectorOption {
	return func(c *ContextCollector) {
		if limit > 0 {
			c.maxSessions = limit
		}
	}
}

// ContextCollector aggregates per-session context fragments until the
// context injector drains them into the outgoing prompt.
//
// Sessions idle for longer than the TTL read as absent immediately and are
// dropped by the next Register or Collect. When the session cap is exceeded
// the least recently accessed session is evicted.
type ContextCollector struct {
	mu          sync.Mutex
	clock       ports.Clock
	ttl         time.Duration
	maxSessions int
	sessions    map[string]*collectorSession
	byAccess    sessionHeap
	nextSeq     uint64
}

type collectorSession struct {
	key          string
	entries      map[string]domain.ContextEntry
	lastAccessed time.Time
	seq          uint64
	index        int
}

func NewContextCollector(clock ports.Clock, opts ...CollectorOption) *ContextCollector {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	c := &ContextCollector{
		clock:       clock,
		ttl:         DefaultSessionTTL,
		maxSessions: DefaultMaxSessions,
		sessions:    map[string]*collectorSession{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *ContextCollector) Register(sessionKey string, entry domain.ContextEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.pruneExpired(now)

	session, ok := c.sessions[sessionKey]
	if !ok {
		session = &collectorSession{
			key:     sessionKey,
			entries: map[string]domain.ContextEntry{},
			seq:     c.nextSeq,
		}
		c.nextSeq++
		c.sessions[sessionKey] = session
		session.lastAccessed = now
		heap.Push(&c.byAccess, session)
	}

	session.entries[entry.ID] = entry
	c.touch(session, now)

	for len(c.sessions) > c.maxSessions {
		c.removeSession(c.byAccess[0])
	}
}

func (c *ContextCollector) Unregister(sessionKey, entryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.sessions[sessionKey]
	if !ok {
		return
	}

	delete(session.entries, entryID)
	if len(session.entries) == 0 {
		c.removeSession(session)
	}
}

// Collect returns the session's entries in injection order and consumes the
// one-shot ones, so each one-shot entry is returned by exactly one call.
func (c *ContextCollector) Collect(sessionKey string) []domain.ContextEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	c.pruneExpired(now)

	session, ok := c.sessions[sessionKey]
	if !ok {
		return nil
	}
	c.touch(session, now)

	entries := sortedEntries(session.entries)
	for _, entry := range entries {
		if entry.OneShot {
			delete(session.entries, entry.ID)
		}
	}
	if len(session.entries) == 0 {
		c.removeSession(session)
	}

	return entries
}

func (c *ContextCollector) CollectAsString(sessionKey string, separator ...string) string {
	sep := DefaultContextSeparator
	if len(separator) > 0 {
		sep = separator[0]
	}

	entries := c.Collect(sessionKey)
	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		contents = append(contents, entry.Content)
	}

	return strings.Join(contents, sep)
}

func (c *ContextCollector) Clear(sessionKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if session, ok := c.sessions[sessionKey]; ok {
		c.removeSession(session)
	}
}

func (c *ContextCollector) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sessions = map[string]*collectorSession{}
	c.byAccess = nil
}

// GetEntries is the read-only form of Collect: nothing is pruned, touched or
// consumed.
func (c *ContextCollector) GetEntries(sessionKey string) []domain.ContextEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.liveSession(sessionKey)
	if !ok {
		return nil
	}

	return sortedEntries(session.entries)
}

func (c *ContextCollector) HasEntries(sessionKey string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, ok := c.liveSession(sessionKey)
	return ok && len(session.entries) > 0
}

func (c *ContextCollector) SessionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.sessions)
}

func (c *ContextCollector) liveSession(sessionKey string) (*collectorSession, bool) {
	session, ok := c.sessions[sessionKey]
	if !ok || c.expired(session, c.clock.Now()) {
		return nil, false
	}
	return session, true
}

func (c *ContextCollector) expired(session *collectorSession, now time.Time) bool {
	return now.Sub(session.lastAccessed) > c.ttl
}

func (c *ContextCollector) pruneExpired(now time.Time) {
	for len(c.byAccess) > 0 && c.expired(c.byAccess[0], now) {
		c.removeSession(c.byAccess[0])
	}
}

func (c *ContextCollector) touch(session *collectorSession, now time.Time) {
	session.lastAccessed = now
	heap.Fix(&c.byAccess, session.index)
}

func (c *ContextCollector) removeSession(session *collectorSession) {
	heap.Remove(&c.byAccess, session.index)
	delete(c.sessions, session.key)
}

func sortedEntries(entries map[string]domain.ContextEntry) []domain.ContextEntry {
	sorted := make([]domain.ContextEntry, 0, len(entries))
	for _, entry := range entries {
		sorted = append(sorted, entry)
	}

	slices.SortFunc(sorted, func(a, b domain.ContextEntry) int {
		if byRank := cmp.Compare(a.Priority.Rank(), b.Priority.Rank()); byRank != 0 {
			return byRank
		}
		return strings.Compare(a.ID, b.ID)
	})

	return sorted
}

// sessionHeap is a min-heap on (lastAccessed, seq).
type sessionHeap []*collectorSession

func (h sessionHeap) Len() int { return len(h) }

func (h sessionHeap) Less(i, j int) bool {
	if !h[i].lastAccessed.Equal(h[j].lastAccessed) {
		return h[i].lastAccessed.Before(h[j].lastAccessed)
	}
	return h[i].seq < h[j].seq
}

func (h sessionHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *sessionHeap) Push(x any) {
	session := x.(*collectorSession)
	session.index = len(*h)
	*h = append(*h, session)
}

func (h *sessionHeap) Pop() any {
	old := *h
	n := len(old)
	session := old[n-1]
	old[n-1] = nil
	session.index = -1
	*h = old[:n-1]
	return session
}
