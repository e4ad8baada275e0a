// Package feed assembles the timeline shown to the user: it merges the
// regular paginated timeline with the boosted-post set into one ordered,
// deduplicated list, and applies reactions optimistically before the
// server confirms them.
package feed

import (
	"sync"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

// Source supplies the feed's three collaborator calls. The api package
// satisfies it for both the home timeline and page timelines; response
// shape quirks are normalized there and never reach this package.
type Source interface {
	Timeline(page, limit int) ([]api.Post, error)
	BoostedPosts() ([]api.BoostedPost, error)
	React(postID, reactionType string) ([]api.Reaction, error)
}

// Feed owns the aggregated post list for one view. The list is replaced
// wholesale on every mutation (copy-on-write), so a snapshot handed out
// by Posts is never changed underneath its reader, and a reaction
// applied while a page fetch is in flight is never clobbered.
type Feed struct {
	mu   sync.Mutex
	src  Source
	sess *session.Session

	pageSize int
	posts    []api.Post
	page     int
	hasMore  bool
	loading  bool
	closed   bool

	onChange func()
	pending  sync.WaitGroup
}

// New creates a feed over src acting as the given session's user.
func New(src Source, sess *session.Session, pageSize int) *Feed {
	return &Feed{
		src:      src,
		sess:     sess,
		pageSize: pageSize,
		posts:    []api.Post{},
		page:     1,
	}
}

// Posts returns the current aggregated list. The returned slice is a
// snapshot; it is not mutated by later feed operations.
func (f *Feed) Posts() []api.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.posts
}

// HasMore reports whether another page of regular posts is expected.
// It is a heuristic: true iff the last fetched page was full. When the
// total count is an exact multiple of the page size, one extra empty
// LoadMore happens before it flips to false.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// IsLoadingMore reports whether a load is in flight.
func (f *Feed) IsLoadingMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// OnChange registers a hook called after every state change, so any
// open view of the same list (timeline, post detail) re-renders.
func (f *Feed) OnChange(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// Close detaches the feed from its view. Responses that arrive after
// Close are dropped instead of being applied to a dead view.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

// Wait blocks until all in-flight reaction reconciliations settle.
func (f *Feed) Wait() {
	f.pending.Wait()
}

func (f *Feed) notify() {
	f.mu.Lock()
	fn := f.onChange
	f.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func clonePosts(posts []api.Post) []api.Post {
	out := make([]api.Post, len(posts))
	copy(out, posts)
	return out
}
