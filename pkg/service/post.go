package service

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
)

// PostService provides post CRUD operations
type PostService struct{}

// NewPostService creates a new post service
func NewPostService() *PostService {
	return &PostService{}
}

// CreatePost creates a new post
func (ps *PostService) CreatePost(content, imageURL, pageID string) error {
	logger.Debug("Creating post", "page_id", pageID)

	post, err := api.CreatePost(api.CreatePostRequest{
		Content:  content,
		ImageURL: imageURL,
		PageID:   pageID,
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	output.PrintSuccess("Posted [%s]", post.ID)
	return nil
}

// ViewPost displays a single post with its reactions
func (ps *PostService) ViewPost(postID string) error {
	logger.Debug("Viewing post", "post_id", postID)

	post, err := api.GetPost(postID)
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}

	displayPosts([]api.Post{*post})
	return nil
}

// DeletePost deletes a post
func (ps *PostService) DeletePost(postID string) error {
	logger.Debug("Deleting post", "post_id", postID)

	if err := api.DeletePost(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	output.PrintSuccess("Post deleted")
	return nil
}
