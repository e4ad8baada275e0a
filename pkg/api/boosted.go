package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// boostedListResponse covers both key names the server has used for the
// boosted-posts payload. Older deployments return "boostedPosts", newer
// ones "data"; whichever is present wins.
type boostedListResponse struct {
	Data         []BoostedPost `json:"data"`
	BoostedPosts []BoostedPost `json:"boostedPosts"`
}

func (r *boostedListResponse) items() []BoostedPost {
	if r.Data != nil {
		return r.Data
	}
	if r.BoostedPosts != nil {
		return r.BoostedPosts
	}
	return []BoostedPost{}
}

// GetBoostedPosts retrieves the current set of boosted posts for the
// home timeline. The endpoint is not paginated.
func GetBoostedPosts() ([]BoostedPost, error) {
	logger.Debug("Fetching boosted posts")

	var response boostedListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/posts/boosted")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch boosted posts: %s", resp.Status())
	}

	return normalizeBoosted(response.items()), nil
}

// GetPageBoostedPosts retrieves the boosted posts for a community page.
func GetPageBoostedPosts(pageID string) ([]BoostedPost, error) {
	logger.Debug("Fetching page boosted posts", "page_id", pageID)

	var response boostedListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/pages/%s/boosted", pageID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch page boosted posts: %s", resp.Status())
	}

	return normalizeBoosted(response.items()), nil
}

func normalizeBoosted(envelopes []BoostedPost) []BoostedPost {
	for i := range envelopes {
		if envelopes[i].Post.Reactions == nil {
			envelopes[i].Post.Reactions = []Reaction{}
		}
	}
	return envelopes
}
