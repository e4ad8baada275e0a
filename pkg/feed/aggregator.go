package feed

import (
	"sort"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// LoadInitial fetches page 1 of the regular timeline and the full
// boosted set, and replaces the list with their merge. A regular-fetch
// failure leaves prior state untouched; a boosted-fetch failure
// degrades to an empty boosted set.
func (f *Feed) LoadInitial() error {
	f.mu.Lock()
	if f.loading || f.closed {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	f.mu.Unlock()
	defer f.clearLoading()

	regular, boosted, err := f.fetchPair(1)
	if err != nil {
		return err
	}

	merged := merge(regular, boosted, nil)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.posts = merged
	f.page = 2
	f.hasMore = len(regular) == f.pageSize
	f.mu.Unlock()

	f.notify()
	return nil
}

// Refresh re-fetches from page 1 and replaces the whole list. Used
// after creating a post, and the only way to converge again after a
// failed reaction write.
func (f *Feed) Refresh() error {
	return f.LoadInitial()
}

// LoadMore fetches the next regular page plus the boosted set and
// appends anything not already present. It is a no-op while a load is
// in flight or when hasMore is false, so rapid repeated triggers do not
// stack network calls. The cursor advances only on success.
func (f *Feed) LoadMore() error {
	f.mu.Lock()
	if f.loading || !f.hasMore || f.closed {
		f.mu.Unlock()
		return nil
	}
	f.loading = true
	page := f.page
	f.mu.Unlock()
	defer f.clearLoading()

	regular, boosted, err := f.fetchPair(page)
	if err != nil {
		return err
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}

	seen := make(map[string]struct{}, len(f.posts))
	for _, p := range f.posts {
		seen[p.ID] = struct{}{}
	}

	increment := merge(regular, boosted, seen)

	posts := clonePosts(f.posts)
	f.posts = append(posts, increment...)
	f.page = page + 1
	f.hasMore = len(regular) == f.pageSize
	f.mu.Unlock()

	f.notify()
	return nil
}

func (f *Feed) clearLoading() {
	f.mu.Lock()
	f.loading = false
	f.mu.Unlock()
}

// fetchPair issues the regular-page and boosted-set requests
// concurrently and waits for both before returning, so the merge never
// sees a partial pair. Only the regular fetch can fail the pair.
func (f *Feed) fetchPair(page int) ([]api.Post, []api.BoostedPost, error) {
	var boosted []api.BoostedPost
	done := make(chan struct{})

	go func() {
		defer close(done)
		b, err := f.src.BoostedPosts()
		if err != nil {
			// Fail-soft: the regular feed still renders.
			logger.Warn("Boosted posts fetch failed", "error", err)
			return
		}
		boosted = b
	}()

	regular, err := f.src.Timeline(page, f.pageSize)
	<-done

	if err != nil {
		return nil, nil, err
	}
	return regular, boosted, nil
}

// merge unwraps boosted envelopes, drops anything whose ID is in skip
// or already taken within this batch, and orders the result: boosted
// posts first regardless of timestamp, then newest-first within each
// group. The sort is stable, so server order breaks timestamp ties.
// A post present both as boosted and regular keeps its boosted form.
func merge(regular []api.Post, boosted []api.BoostedPost, skip map[string]struct{}) []api.Post {
	out := make([]api.Post, 0, len(regular)+len(boosted))
	taken := make(map[string]struct{}, len(regular)+len(boosted))

	for _, env := range boosted {
		p := env.Post
		if _, dup := taken[p.ID]; dup {
			continue
		}
		if _, dup := skip[p.ID]; dup {
			continue
		}
		p.IsBoosted = true
		p.BoostedAt = env.BoostedAt
		taken[p.ID] = struct{}{}
		out = append(out, p)
	}

	for _, p := range regular {
		if _, dup := taken[p.ID]; dup {
			continue
		}
		if _, dup := skip[p.ID]; dup {
			continue
		}
		taken[p.ID] = struct{}{}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsBoosted != out[j].IsBoosted {
			return out[i].IsBoosted
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
