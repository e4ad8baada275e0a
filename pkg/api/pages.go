package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// PageListResponse lists community pages
type PageListResponse struct {
	Pages      []Page `json:"pages"`
	TotalCount int    `json:"totalCount"`
	Page       int    `json:"page"`
}

// GetPages retrieves community pages
func GetPages(page, limit int) (*PageListResponse, error) {
	logger.Debug("Fetching pages", "page", page)

	var response PageListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":  fmt.Sprintf("%d", page),
			"limit": fmt.Sprintf("%d", limit),
		}).
		SetResult(&response).
		Get("/api/pages")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch pages: %s", resp.Status())
	}

	return &response, nil
}

// GetPage retrieves a single community page
func GetPage(pageID string) (*Page, error) {
	logger.Debug("Fetching page", "page_id", pageID)

	var response struct {
		Page Page `json:"page"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/pages/%s", pageID))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch page: %s", resp.Status())
	}

	return &response.Page, nil
}

// FollowPage follows a community page
func FollowPage(pageID string) error {
	logger.Debug("Following page", "page_id", pageID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/pages/%s/follow", pageID))

	if err != nil {
		return fmt.Errorf("failed to follow page: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to follow page: %s", resp.Status())
	}

	return nil
}

// UnfollowPage unfollows a community page
func UnfollowPage(pageID string) error {
	logger.Debug("Unfollowing page", "page_id", pageID)

	resp, err := client.GetClient().
		R().
		Delete(fmt.Sprintf("/api/pages/%s/follow", pageID))

	if err != nil {
		return fmt.Errorf("failed to unfollow page: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to unfollow page: %s", resp.Status())
	}

	return nil
}
