package browse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPagerRevealsAllPages(t *testing.T) {
	p := NewPager(numbered(30), DefaultView(), nil)

	assert.Len(t, p.Current(), 12)
	assert.True(t, p.HasMore())
	assert.Equal(t, 30, p.Total())

	next, err := p.LoadNext()
	require.NoError(t, err)
	assert.Len(t, next, 12)
	assert.Equal(t, "Startup 012", next[0].CompanyName)
	assert.Len(t, p.Revealed(), 24)

	next, err = p.LoadNext()
	require.NoError(t, err)
	assert.Len(t, next, 6)
	assert.False(t, p.HasMore())
	assert.Equal(t, 3, p.View().Page)

	_, err = p.LoadNext()
	assert.ErrorIs(t, err, ErrNoMorePages)
	assert.Len(t, p.Revealed(), 30)
}

func TestPagerStartsAtViewPage(t *testing.T) {
	p := NewPager(numbered(30), DefaultView().WithPage(2), nil)
	assert.Len(t, p.Revealed(), 24)
	assert.Len(t, p.Current(), 24)
	assert.True(t, p.HasMore())
}

func TestPagerReset(t *testing.T) {
	records := numbered(30)
	records[29].Category = "Fintech"

	p := NewPager(records, DefaultView(), nil)
	_, err := p.LoadNext()
	require.NoError(t, err)

	p.Reset(p.View().WithFilter("Fintech"))
	assert.Equal(t, 1, p.View().Page)
	assert.Equal(t, []string{"Startup 029"}, names(p.Revealed()))
	assert.False(t, p.HasMore())
}

func TestPagerEmpty(t *testing.T) {
	p := NewPager(nil, DefaultView(), nil)
	assert.Empty(t, p.Current())
	assert.False(t, p.HasMore())
	_, err := p.LoadNext()
	assert.ErrorIs(t, err, ErrNoMorePages)
}

func TestPagerRejectsOverlappingLoads(t *testing.T) {
	p := NewPager(numbered(12*50), DefaultView(), nil)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		loaded   int
		rejected int
	)
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.LoadNext()
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				loaded++
			case ErrLoadInFlight, ErrNoMorePages:
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, loaded+rejected)
	assert.Equal(t, 1+loaded, p.View().Page, "each accepted load advances exactly one page")
	assert.Len(t, p.Revealed(), min(50, 1+loaded)*12)
	seen := make(map[string]bool)
	for _, r := range p.Revealed() {
		assert.False(t, seen[r.CompanyName], "duplicate %s", r.CompanyName)
		seen[r.CompanyName] = true
	}
}

func TestPagerStepsMatchPageCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n")
		p := NewPager(numbered(n), DefaultView(), NewSorter("en"))

		var steps int
		var union []string
		if len(p.Current()) > 0 {
			steps++
			union = append(union, names(p.Current())...)
		}
		for p.HasMore() {
			next, err := p.LoadNext()
			if err != nil {
				t.Fatalf("LoadNext: %v", err)
			}
			steps++
			union = append(union, names(next)...)
		}

		if steps != PageCount(n) {
			t.Fatalf("revealed %d records in %d steps, want %d", n, steps, PageCount(n))
		}
		want := names(NewSorter("en").Sort(numbered(n), SortName))
		if len(union) != len(want) {
			t.Fatalf("revealed %d records, want %d", len(union), len(want))
		}
		for i := range want {
			if union[i] != want[i] {
				t.Fatalf("position %d: got %s want %s", i, union[i], want[i])
			}
		}
	})
}
