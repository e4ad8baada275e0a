package feed

import (
	"time"

	"github.com/google/uuid"
	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// React applies the acting user's reaction to a post immediately and
// reconciles with the server in the background. Semantics per reaction
// slot: no reaction -> add; same type -> remove (toggle off); other
// type -> replace in place.
//
// A failed write is logged and NOT rolled back: the optimistic state
// stays until the next Refresh. Responsiveness over strict consistency.
func (f *Feed) React(postID, reactionType string) {
	if !f.sess.IsAuthenticated() {
		logger.Warn("Reaction ignored, not logged in", "post_id", postID)
		return
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}

	idx := indexOf(f.posts, postID)
	if idx < 0 {
		f.mu.Unlock()
		return
	}

	posts := clonePosts(f.posts)
	post := &posts[idx]
	post.Reactions = applyOptimistic(post.Reactions, f.sess.UserID, postID, reactionType)
	f.posts = posts
	f.mu.Unlock()

	f.notify()

	f.pending.Add(1)
	go func() {
		defer f.pending.Done()

		reactions, err := f.src.React(postID, reactionType)
		if err != nil {
			logger.Error("Reaction request failed, keeping optimistic state",
				"post_id", postID, "type", reactionType, "error", err)
			return
		}
		f.applyServerReactions(postID, reactions)
	}()
}

// applyOptimistic mutates a copy of the reaction list for the toggle /
// switch / add cases. Temporary IDs carry a "local-" prefix so they can
// never collide with server-issued IDs within a session.
func applyOptimistic(reactions []api.Reaction, userID, postID, reactionType string) []api.Reaction {
	out := make([]api.Reaction, 0, len(reactions)+1)
	found := false

	for _, r := range reactions {
		if !found && r.UserID == userID {
			found = true
			if r.Type == reactionType {
				// Toggle off: drop it.
				continue
			}
			// Switch type, keep the reaction's identity.
			r.Type = reactionType
		}
		out = append(out, r)
	}

	if !found {
		out = append(out, api.Reaction{
			ID:        "local-" + uuid.NewString(),
			Type:      reactionType,
			UserID:    userID,
			PostID:    postID,
			CreatedAt: time.Now(),
		})
	}

	return out
}

// applyServerReactions replaces a post's reaction set with the server's
// authoritative set. The post's boosted flags are client-owned and
// survive untouched because only the reaction set is replaced.
func (f *Feed) applyServerReactions(postID string, reactions []api.Reaction) {
	f.mu.Lock()
	if f.closed {
		// Late response for a view that no longer exists.
		f.mu.Unlock()
		return
	}

	idx := indexOf(f.posts, postID)
	if idx < 0 {
		f.mu.Unlock()
		return
	}

	if reactions == nil {
		reactions = []api.Reaction{}
	}

	posts := clonePosts(f.posts)
	posts[idx].Reactions = reactions
	f.posts = posts
	f.mu.Unlock()

	f.notify()
}

func indexOf(posts []api.Post, postID string) int {
	for i := range posts {
		if posts[i].ID == postID {
			return i
		}
	}
	return -1
}
