package feed

import (
	"github.com/saymynamenow/lossantos-cli/pkg/api"
)

// HomeSource feeds the aggregator from the home timeline endpoints.
type HomeSource struct{}

func (HomeSource) Timeline(page, limit int) ([]api.Post, error) {
	return api.GetTimeline(page, limit)
}

func (HomeSource) BoostedPosts() ([]api.BoostedPost, error) {
	return api.GetBoostedPosts()
}

func (HomeSource) React(postID, reactionType string) ([]api.Reaction, error) {
	return api.ReactToPost(postID, reactionType)
}

// PageSource feeds the aggregator from one community page's endpoints.
// Reactions go through the same post endpoint as the home timeline.
type PageSource struct {
	PageID string
}

func (s PageSource) Timeline(page, limit int) ([]api.Post, error) {
	return api.GetPageTimeline(s.PageID, page, limit)
}

func (s PageSource) BoostedPosts() ([]api.BoostedPost, error) {
	return api.GetPageBoostedPosts(s.PageID)
}

func (s PageSource) React(postID, reactionType string) ([]api.Reaction, error) {
	return api.ReactToPost(postID, reactionType)
}
