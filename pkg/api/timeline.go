package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// timelineResponse is the raw wire shape of the timeline endpoints. The
// payload key is the singular "post" even though it holds an array.
type timelineResponse struct {
	Post []Post `json:"post"`
}

// GetTimeline retrieves one page of the home timeline.
func GetTimeline(page, limit int) ([]Post, error) {
	logger.Debug("Fetching timeline", "page", page, "limit", limit)

	var response timelineResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":  fmt.Sprintf("%d", page),
			"limit": fmt.Sprintf("%d", limit),
		}).
		SetResult(&response).
		Get("/api/posts/timeline")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch timeline: %s", resp.Status())
	}

	return normalizePosts(response.Post), nil
}

// GetPageTimeline retrieves one page of a community page's timeline.
func GetPageTimeline(pageID string, page, limit int) ([]Post, error) {
	logger.Debug("Fetching page timeline", "page_id", pageID, "page", page)

	var response timelineResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":  fmt.Sprintf("%d", page),
			"limit": fmt.Sprintf("%d", limit),
		}).
		SetResult(&response).
		Get(fmt.Sprintf("/api/pages/%s/timeline", pageID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch page timeline: %s", resp.Status())
	}

	return normalizePosts(response.Post), nil
}

// normalizePosts guarantees non-nil slices so a malformed response
// degrades to an empty feed instead of a nil deref downstream.
func normalizePosts(posts []Post) []Post {
	if posts == nil {
		return []Post{}
	}
	for i := range posts {
		if posts[i].Reactions == nil {
			posts[i].Reactions = []Reaction{}
		}
	}
	return posts
}
