package feed

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/credentials"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func mkPost(id string, createdAt time.Time) api.Post {
	return api.Post{
		ID:        id,
		UserID:    "author-" + id,
		Content:   "post " + id,
		Reactions: []api.Reaction{},
		CreatedAt: createdAt,
	}
}

func mkBoosted(id string, createdAt, boostedAt time.Time) api.BoostedPost {
	return api.BoostedPost{
		Post:      mkPost(id, createdAt),
		BoostedAt: boostedAt,
	}
}

func testSession() *session.Session {
	return session.FromCredentials(&credentials.Credentials{
		AccessToken: "test-token",
		ExpiresAt:   time.Now().Add(time.Hour),
		UserID:      "u1",
		Username:    "franklin",
	})
}

// fakeSource is a deterministic stand-in for the API layer. React
// mirrors the server's one-reaction-per-user semantics so multi-step
// reaction tests settle to what a real server would return.
type fakeSource struct {
	mu sync.Mutex

	pages   map[int][]api.Post
	boosted []api.BoostedPost

	timelineErr error
	boostedErr  error
	reactErr    error

	timelineCalls    int
	boostedCalls     int
	reactCalls       int
	lastTimelinePage int

	// When non-nil, the call blocks until the channel is closed.
	timelineGate chan struct{}
	reactGate    chan struct{}

	userID          string
	serverReactions map[string][]api.Reaction
	nextReactionID  int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pages:           map[int][]api.Post{},
		userID:          "u1",
		serverReactions: map[string][]api.Reaction{},
	}
}

func (s *fakeSource) Timeline(page, limit int) ([]api.Post, error) {
	s.mu.Lock()
	s.timelineCalls++
	s.lastTimelinePage = page
	gate := s.timelineGate
	err := s.timelineErr
	posts := s.pages[page]
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	out := make([]api.Post, len(posts))
	copy(out, posts)
	return out, nil
}

func (s *fakeSource) BoostedPosts() ([]api.BoostedPost, error) {
	s.mu.Lock()
	s.boostedCalls++
	err := s.boostedErr
	boosted := s.boosted
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	out := make([]api.BoostedPost, len(boosted))
	copy(out, boosted)
	return out, nil
}

func (s *fakeSource) React(postID, reactionType string) ([]api.Reaction, error) {
	s.mu.Lock()
	s.reactCalls++
	gate := s.reactGate
	err := s.reactErr
	s.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.serverReactions[postID]
	out := make([]api.Reaction, 0, len(set)+1)
	found := false
	for _, r := range set {
		if r.UserID == s.userID {
			found = true
			if r.Type == reactionType {
				continue // toggle off
			}
			r.Type = reactionType
		}
		out = append(out, r)
	}
	if !found {
		s.nextReactionID++
		out = append(out, api.Reaction{
			ID:        fmt.Sprintf("srv-%d", s.nextReactionID),
			Type:      reactionType,
			UserID:    s.userID,
			PostID:    postID,
			CreatedAt: baseTime,
		})
	}
	s.serverReactions[postID] = out

	result := make([]api.Reaction, len(out))
	copy(result, out)
	return result, nil
}

func postIDs(posts []api.Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func assertIDs(t *testing.T, posts []api.Post, want ...string) {
	t.Helper()
	got := postIDs(posts)
	if len(got) != len(want) {
		t.Fatalf("got ids %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got ids %v, want %v", got, want)
		}
	}
}

func userReactions(p api.Post, userID string) []api.Reaction {
	var out []api.Reaction
	for _, r := range p.Reactions {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
