package service

import (
	"testing"
	"time"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

func TestNewFeedService(t *testing.T) {
	svc := NewFeedService(session.Anonymous())
	if svc == nil {
		t.Error("NewFeedService returned nil")
	}
}

func TestReactionSummary(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		reactions []api.Reaction
		want      string
	}{
		{"empty", nil, ""},
		{
			"single",
			[]api.Reaction{{Type: "like", UserID: "u1", CreatedAt: now}},
			"like x1",
		},
		{
			"grouped by first appearance",
			[]api.Reaction{
				{Type: "like", UserID: "u1"},
				{Type: "love", UserID: "u2"},
				{Type: "like", UserID: "u3"},
			},
			"like x2, love x1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reactionSummary(tt.reactions); got != tt.want {
				t.Errorf("reactionSummary = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayPosts(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("displayPosts panicked: %v", r)
		}
	}()

	displayPosts([]api.Post{
		{
			ID:             "p1",
			AuthorUsername: "franklin",
			Content:        "out by the pier",
			IsBoosted:      true,
			BoostedAt:      time.Now(),
			Reactions:      []api.Reaction{{Type: "like", UserID: "u2"}},
			CreatedAt:      time.Now(),
		},
		{
			ID:        "p2",
			UserID:    "u9",
			Content:   "no display name on this one",
			Reactions: []api.Reaction{},
			CreatedAt: time.Now(),
		},
	})
}

func TestPageSizeDefault(t *testing.T) {
	// Without config initialization the key is unset; the fallback
	// keeps the aggregator usable.
	if got := pageSize(); got <= 0 {
		t.Errorf("pageSize() = %d, want a positive default", got)
	}
}
