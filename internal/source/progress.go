package source

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks how much of the collection has been fetched.
// TotalItems comes from the endpoint's optional "count" field and is zero
// when the endpoint does not report it.
type Progress struct {
	TotalItems     int
	FetchedItems   int
	FetchedPages   int
	StartTime      time.Time
	LastUpdateTime time.Time

	mu sync.RWMutex
}

// ProgressCallback receives a snapshot after every fetched page.
type ProgressCallback func(snapshot ProgressSnapshot)

// NewProgress creates a progress tracker starting now.
func NewProgress() *Progress {
	now := time.Now()
	return &Progress{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// AddPage records a fetched page of items. A positive total updates TotalItems.
func (p *Progress) AddPage(items, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.FetchedItems += items
	p.FetchedPages++
	if total > 0 {
		p.TotalItems = total
	}
	p.LastUpdateTime = time.Now()
}

// PercentComplete returns the completion percentage (0-100) and whether the
// total is known.
func (p *Progress) PercentComplete() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentCompleteUnsafe()
}

// ElapsedTime returns the time elapsed since fetching started.
func (p *Progress) ElapsedTime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return time.Since(p.StartTime)
}

// Snapshot returns a copy of the current progress state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	percent, known := p.percentCompleteUnsafe()
	return ProgressSnapshot{
		TotalItems:     p.TotalItems,
		FetchedItems:   p.FetchedItems,
		FetchedPages:   p.FetchedPages,
		StartTime:      p.StartTime,
		LastUpdateTime: p.LastUpdateTime,
		Percent:        percent,
		TotalKnown:     known,
		ElapsedTime:    time.Since(p.StartTime),
	}
}

// Reset resets the tracker to its initial state.
func (p *Progress) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	p.TotalItems = 0
	p.FetchedItems = 0
	p.FetchedPages = 0
	p.StartTime = now
	p.LastUpdateTime = now
}

// percentCompleteUnsafe must be called with the lock held.
func (p *Progress) percentCompleteUnsafe() (float64, bool) {
	if p.TotalItems <= 0 {
		return 0, false
	}
	pct := (float64(p.FetchedItems) / float64(p.TotalItems)) * percentMultiplier
	if pct > percentMultiplier {
		pct = percentMultiplier
	}
	return pct, true
}

// ProgressSnapshot is an immutable view of Progress.
type ProgressSnapshot struct {
	TotalItems     int
	FetchedItems   int
	FetchedPages   int
	StartTime      time.Time
	LastUpdateTime time.Time
	Percent        float64
	TotalKnown     bool
	ElapsedTime    time.Duration
}
