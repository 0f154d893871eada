package browse

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/agentstation/seedmap/pkg/startups"
)

var (
	// ErrNoMorePages is returned by LoadNext once every match is revealed.
	ErrNoMorePages = errors.New("no more pages")

	// ErrLoadInFlight is returned by LoadNext while another load runs.
	ErrLoadInFlight = errors.New("load already in flight")
)

// Pager reveals a filtered, sorted record set one page at a time. It is
// the "has more / load next" half of the incremental grid and has no
// notion of visibility; callers decide when to ask for the next page.
type Pager struct {
	records []startups.Record
	sorter  *Sorter

	inFlight atomic.Bool

	mu      sync.RWMutex
	result  Result
	current []startups.Record
}

// NewPager filters and sorts records for v and reveals pages 1 through
// v.Page.
func NewPager(records []startups.Record, v View, sorter *Sorter) *Pager {
	if sorter == nil {
		sorter = NewSorter("")
	}
	p := &Pager{records: records, sorter: sorter}
	p.reset(v)
	return p
}

func (p *Pager) reset(v View) {
	res := p.sorter.Apply(p.records, v)
	p.mu.Lock()
	p.result = res
	p.current = res.Revealed()
	p.mu.Unlock()
}

// View returns the view of the last revealed page.
func (p *Pager) View() View {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.result.View
}

// Total is the number of matching records.
func (p *Pager) Total() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.result.Total
}

// Revealed returns every record revealed so far, in order.
func (p *Pager) Revealed() []startups.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.result.Revealed()
}

// Current returns the records revealed by the most recent step.
func (p *Pager) Current() []startups.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// HasMore reports whether matches remain beyond the revealed window.
func (p *Pager) HasMore() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.result.HasMore
}

// LoadNext advances one page and returns only the newly revealed records.
// Overlapping calls are rejected with ErrLoadInFlight and leave the pager
// unchanged.
func (p *Pager) LoadNext() ([]startups.Record, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, ErrLoadInFlight
	}
	defer p.inFlight.Store(false)

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.result.HasMore {
		return nil, ErrNoMorePages
	}

	next := p.result.View.NextPage()
	start, end := Window(p.result.Total, next.Page)
	p.result.View = next
	p.result.Page = next.Page
	p.result.Visible = p.result.Matched[start:end]
	p.result.HasMore = end < p.result.Total
	p.current = p.result.Visible
	return p.current, nil
}

// Reset applies a new view from its first page, replacing everything
// revealed so far. It is used when the filter, search or sort changes.
func (p *Pager) Reset(v View) {
	p.reset(v.WithPage(1))
}
