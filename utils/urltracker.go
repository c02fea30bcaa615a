package utils

// URLTracker counts distinct and duplicate listing URLs across one batch
// run. Duplicates are still processed (the later record replaces the
// earlier listing row); the tracker only feeds the run summary. The
// batch is single-threaded, so no locking.
type URLTracker struct {
	seen       map[string]struct{}
	duplicates int
}

// NewURLTracker creates an empty tracker.
func NewURLTracker() *URLTracker {
	return &URLTracker{seen: make(map[string]struct{})}
}

// Add records a URL and reports whether it was new.
func (t *URLTracker) Add(url string) bool {
	if _, exists := t.seen[url]; exists {
		t.duplicates++
		return false
	}
	t.seen[url] = struct{}{}
	return true
}

// Distinct returns the number of distinct URLs seen.
func (t *URLTracker) Distinct() int {
	return len(t.seen)
}

// Duplicates returns how many records repeated an earlier URL.
func (t *URLTracker) Duplicates() int {
	return t.duplicates
}
