package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
)

func TestLoadInitial_BoostedSortsFirst(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{
		mkPost("a", baseTime),
		mkPost("b", baseTime.Add(-time.Second)),
	}
	src.boosted = []api.BoostedPost{
		mkBoosted("c", baseTime.Add(-5*time.Second), baseTime),
	}

	f := New(src, testSession(), 5)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	// Boosted post wins the top slot despite being the oldest.
	assertIDs(t, f.Posts(), "c", "a", "b")

	if f.HasMore() {
		t.Error("HasMore = true, want false for a 2-item page with page size 5")
	}

	first := f.Posts()[0]
	if !first.IsBoosted {
		t.Error("boosted post lost IsBoosted after merge")
	}
	if !first.BoostedAt.Equal(baseTime) {
		t.Errorf("BoostedAt = %v, want %v", first.BoostedAt, baseTime)
	}
}

func TestMergeOrdering(t *testing.T) {
	tests := []struct {
		name    string
		regular []api.Post
		boosted []api.BoostedPost
		want    []string
	}{
		{
			name: "newest first within regular",
			regular: []api.Post{
				mkPost("old", baseTime.Add(-time.Hour)),
				mkPost("new", baseTime),
				mkPost("mid", baseTime.Add(-time.Minute)),
			},
			want: []string{"new", "mid", "old"},
		},
		{
			name: "all boosted precede all regular",
			regular: []api.Post{
				mkPost("r1", baseTime),
				mkPost("r2", baseTime.Add(-time.Second)),
			},
			boosted: []api.BoostedPost{
				mkBoosted("b1", baseTime.Add(-time.Hour), baseTime),
				mkBoosted("b2", baseTime.Add(-2*time.Hour), baseTime),
			},
			want: []string{"b1", "b2", "r1", "r2"},
		},
		{
			name: "newest first within boosted",
			boosted: []api.BoostedPost{
				mkBoosted("b-old", baseTime.Add(-time.Hour), baseTime),
				mkBoosted("b-new", baseTime, baseTime),
			},
			want: []string{"b-new", "b-old"},
		},
		{
			name: "post both boosted and regular keeps boosted form",
			regular: []api.Post{
				mkPost("dup", baseTime),
				mkPost("r", baseTime.Add(-time.Second)),
			},
			boosted: []api.BoostedPost{
				mkBoosted("dup", baseTime, baseTime),
			},
			want: []string{"dup", "r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := merge(tt.regular, tt.boosted, nil)
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestMergeOrdering_StableOnTimestampTies(t *testing.T) {
	regular := []api.Post{
		mkPost("first", baseTime),
		mkPost("second", baseTime),
		mkPost("third", baseTime),
	}

	got := merge(regular, nil, nil)

	// Identical timestamps keep input order.
	assertIDs(t, got, "first", "second", "third")
}

func TestLoadInitial_HasMoreHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		returned int
		pageSize int
		want     bool
	}{
		{"full page", 5, 5, true},
		{"short page", 3, 5, false},
		{"empty page", 0, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			for i := 0; i < tt.returned; i++ {
				src.pages[1] = append(src.pages[1], mkPost(
					string(rune('a'+i)), baseTime.Add(-time.Duration(i)*time.Second)))
			}

			f := New(src, testSession(), tt.pageSize)
			if err := f.LoadInitial(); err != nil {
				t.Fatalf("LoadInitial: %v", err)
			}

			if f.HasMore() != tt.want {
				t.Errorf("HasMore = %v, want %v", f.HasMore(), tt.want)
			}
		})
	}
}

func TestLoadMore_AppendsAndDedups(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{
		mkPost("a", baseTime),
		mkPost("b", baseTime.Add(-time.Second)),
	}
	// Page 2 overlaps page 1: "b" must not appear twice.
	src.pages[2] = []api.Post{
		mkPost("b", baseTime.Add(-time.Second)),
		mkPost("c", baseTime.Add(-2*time.Second)),
	}
	src.boosted = []api.BoostedPost{
		mkBoosted("boost", baseTime.Add(-time.Hour), baseTime),
	}

	f := New(src, testSession(), 2)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}
	if err := f.LoadMore(); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}

	// The boosted post is re-fetched on LoadMore but deduped too.
	assertIDs(t, f.Posts(), "boost", "a", "b", "c")

	seen := map[string]int{}
	for _, p := range f.Posts() {
		seen[p.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("post %q appears %d times", id, n)
		}
	}
}

func TestLoadMore_NoopWithoutMore(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{mkPost("a", baseTime)}

	f := New(src, testSession(), 5)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	calls := src.timelineCalls
	if err := f.LoadMore(); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}

	if src.timelineCalls != calls {
		t.Errorf("LoadMore issued a fetch with hasMore=false")
	}
	assertIDs(t, f.Posts(), "a")
}

func TestLoadMore_InFlightGuard(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{
		mkPost("a", baseTime),
		mkPost("b", baseTime.Add(-time.Second)),
	}
	src.pages[2] = []api.Post{
		mkPost("c", baseTime.Add(-2*time.Second)),
	}

	f := New(src, testSession(), 2)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	gate := make(chan struct{})
	src.mu.Lock()
	src.timelineGate = gate
	src.mu.Unlock()

	first := make(chan error)
	go func() { first <- f.LoadMore() }()

	// Wait for the first call to reach the network.
	for {
		if f.IsLoadingMore() {
			break
		}
		time.Sleep(time.Millisecond)
	}

	// Rapid re-trigger while the first is in flight: must not stack a
	// second fetch.
	if err := f.LoadMore(); err != nil {
		t.Fatalf("second LoadMore: %v", err)
	}

	src.mu.Lock()
	src.timelineGate = nil
	calls := src.timelineCalls
	src.mu.Unlock()
	close(gate)

	if err := <-first; err != nil {
		t.Fatalf("first LoadMore: %v", err)
	}

	if calls != 2 { // one for LoadInitial, one for the guarded LoadMore
		t.Errorf("timeline calls = %d, want 2", calls)
	}
	assertIDs(t, f.Posts(), "a", "b", "c")
}

func TestLoadInitial_BoostedFailSoft(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{mkPost("a", baseTime)}
	src.boostedErr = errors.New("boosted endpoint down")

	f := New(src, testSession(), 5)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial should not fail on boosted error, got %v", err)
	}

	assertIDs(t, f.Posts(), "a")
}

func TestLoadInitial_RegularFailureKeepsState(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{mkPost("a", baseTime)}

	f := New(src, testSession(), 5)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	src.mu.Lock()
	src.timelineErr = errors.New("network down")
	src.mu.Unlock()

	if err := f.Refresh(); err == nil {
		t.Fatal("Refresh should surface the regular-fetch error")
	}

	// Already-shown posts stay on screen.
	assertIDs(t, f.Posts(), "a")
}

func TestLoadMore_CursorAdvancesOnlyOnSuccess(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{
		mkPost("a", baseTime),
		mkPost("b", baseTime.Add(-time.Second)),
	}
	src.pages[2] = []api.Post{
		mkPost("c", baseTime.Add(-2*time.Second)),
	}

	f := New(src, testSession(), 2)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	src.mu.Lock()
	src.timelineErr = errors.New("flaky")
	src.mu.Unlock()

	if err := f.LoadMore(); err == nil {
		t.Fatal("LoadMore should fail while timeline errors")
	}

	src.mu.Lock()
	src.timelineErr = nil
	src.mu.Unlock()

	if err := f.LoadMore(); err != nil {
		t.Fatalf("LoadMore retry: %v", err)
	}

	// The retry must re-request the same page the failure consumed.
	if src.lastTimelinePage != 2 {
		t.Errorf("retried page = %d, want 2", src.lastTimelinePage)
	}
	assertIDs(t, f.Posts(), "a", "b", "c")
}

func TestLoadMore_ExactMultipleBoundary(t *testing.T) {
	// Total count is an exact multiple of the page size: the client
	// cannot tell the feed is exhausted until one extra empty page.
	src := newFakeSource()
	src.pages[1] = []api.Post{
		mkPost("a", baseTime),
		mkPost("b", baseTime.Add(-time.Second)),
	}

	f := New(src, testSession(), 2)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	if !f.HasMore() {
		t.Fatal("HasMore = false after a full page")
	}

	if err := f.LoadMore(); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}

	if f.HasMore() {
		t.Error("HasMore still true after the empty boundary page")
	}
	assertIDs(t, f.Posts(), "a", "b")
}

func TestRefresh_ReplacesList(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{mkPost("a", baseTime)}

	f := New(src, testSession(), 5)
	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	// The server now has a fresh post; refresh must replace, not append.
	src.mu.Lock()
	src.pages[1] = []api.Post{
		mkPost("fresh", baseTime.Add(time.Second)),
		mkPost("a", baseTime),
	}
	src.mu.Unlock()

	if err := f.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	assertIDs(t, f.Posts(), "fresh", "a")
}

func TestClose_DropsLateResponses(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{mkPost("a", baseTime)}

	gate := make(chan struct{})
	src.timelineGate = gate

	f := New(src, testSession(), 5)

	done := make(chan error)
	go func() { done <- f.LoadInitial() }()

	for {
		if f.IsLoadingMore() {
			break
		}
		time.Sleep(time.Millisecond)
	}

	f.Close()
	close(gate)

	if err := <-done; err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	if len(f.Posts()) != 0 {
		t.Errorf("closed feed applied a late response: %v", postIDs(f.Posts()))
	}
}

func TestOnChange_FiresAfterLoad(t *testing.T) {
	src := newFakeSource()
	src.pages[1] = []api.Post{mkPost("a", baseTime)}

	f := New(src, testSession(), 5)

	fired := 0
	f.OnChange(func() { fired++ })

	if err := f.LoadInitial(); err != nil {
		t.Fatalf("LoadInitial: %v", err)
	}

	if fired != 1 {
		t.Errorf("OnChange fired %d times, want 1", fired)
	}
}
