// Package bloom provides probabilistic URL seen-sets for frontier
// deduplication.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Set tracks URLs that have already been enqueued. False positives are
// possible (a never-seen URL may be skipped); false negatives are not, so
// a URL reported unseen is genuinely new.
type Set struct {
	f *bloom.BloomFilter
}

// NewSet creates a Set sized for n expected URLs with the given false
// positive rate.
func NewSet(n uint, fpRate float64) *Set {
	return &Set{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add marks a URL as seen.
func (s *Set) Add(url string) {
	s.f.AddString(url)
}

// Contains reports whether the URL may have been seen.
func (s *Set) Contains(url string) bool {
	return s.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the set.
func (s *Set) EstimatedCount() uint {
	return uint(s.f.ApproximatedSize())
}
