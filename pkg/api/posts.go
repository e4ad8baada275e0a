package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// CreatePostRequest is the body of a create-post call.
type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
	PageID   string `json:"pageId,omitempty"`
}

// CreatePost creates a new post, optionally on behalf of a page.
func CreatePost(req CreatePostRequest) (*Post, error) {
	logger.Debug("Creating post", "page_id", req.PageID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Post("/api/posts")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to create post: %s", resp.Status())
	}

	return &response.Post, nil
}

// GetPost retrieves a single post by ID.
func GetPost(postID string) (*Post, error) {
	logger.Debug("Fetching post", "post_id", postID)

	var response struct {
		Post Post `json:"post"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/posts/%s", postID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch post: %s", resp.Status())
	}

	if response.Post.Reactions == nil {
		response.Post.Reactions = []Reaction{}
	}

	return &response.Post, nil
}

// DeletePost deletes a post owned by the current user.
func DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/posts/%s", postID))

	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to delete post: %s", resp.Status())
	}

	return nil
}
