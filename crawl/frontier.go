package crawl

import (
	"strings"
	"sync"

	"github.com/docsforge/llmstxt/bloom"
)

// Frontier sizing for the seen-set Bloom filter.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Entry is one frontier element: a URL plus the depth it was discovered
// at. Entries are transient and owned by the active run; they are never
// persisted.
type Entry struct {
	URL   string
	Depth int
}

// Frontier is the FIFO queue of not-yet-visited URLs, with Bloom-filter
// deduplication of everything ever enqueued. FIFO order makes the crawl a
// breadth-first traversal. Safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Set
	queue []Entry
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		seen: bloom.NewSet(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Push enqueues a URL at the given depth. Returns false if the URL has
// already been seen (enqueued or pre-marked). Fragments are stripped
// before deduplication.
func (f *Frontier) Push(url string, depth int) bool {
	url = stripFragment(url)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Contains(url) {
		return false
	}
	f.seen.Add(url)
	f.queue = append(f.queue, Entry{URL: url, Depth: depth})
	return true
}

// MarkSeen records a URL as seen without enqueuing it. Used to pre-load
// already-indexed URLs so incremental runs never re-enqueue them.
func (f *Frontier) MarkSeen(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen.Add(stripFragment(url))
}

// Pop dequeues the oldest entry. The bool result is false if the frontier
// is empty.
func (f *Frontier) Pop() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Entry{}, false
	}
	entry := f.queue[0]
	f.queue = f.queue[1:]
	return entry, true
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether a URL has been enqueued or pre-marked.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Contains(stripFragment(url))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
