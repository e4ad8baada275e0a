package service

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
)

// PageService manages community pages
type PageService struct{}

// NewPageService creates a new page service
func NewPageService() *PageService {
	return &PageService{}
}

// ListPages displays community pages
func (ps *PageService) ListPages(page, limit int) error {
	logger.Debug("Listing pages", "page", page)

	resp, err := api.GetPages(page, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch pages: %w", err)
	}

	if len(resp.Pages) == 0 {
		fmt.Println("No pages found.")
		return nil
	}

	rows := make([][]string, 0, len(resp.Pages))
	for _, p := range resp.Pages {
		name := p.Name
		if p.IsVerified {
			name += " [verified]"
		}
		rows = append(rows, []string{p.ID, name, fmt.Sprintf("%d", p.FollowerCount)})
	}
	output.PrintTable([]string{"ID", "Name", "Followers"}, rows)

	fmt.Printf("\nShowing %d of %d pages (Page %d)\n", len(resp.Pages), resp.TotalCount, resp.Page)
	return nil
}

// ViewPage displays a page's details
func (ps *PageService) ViewPage(pageID string) error {
	logger.Debug("Viewing page", "page_id", pageID)

	page, err := api.GetPage(pageID)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	fmt.Printf("\n%s", page.Name)
	if page.IsVerified {
		fmt.Printf(" [verified]")
	}
	fmt.Printf("\n")
	if page.Description != "" {
		fmt.Printf("%s\n", page.Description)
	}
	fmt.Printf("Followers: %d\n", page.FollowerCount)
	fmt.Printf("Created:   %s\n", page.CreatedAt.Format("2006-01-02"))
	return nil
}

// Follow follows a page
func (ps *PageService) Follow(pageID string) error {
	logger.Debug("Following page", "page_id", pageID)

	if err := api.FollowPage(pageID); err != nil {
		return fmt.Errorf("failed to follow page: %w", err)
	}

	output.PrintSuccess("Following page")
	return nil
}

// Unfollow unfollows a page
func (ps *PageService) Unfollow(pageID string) error {
	logger.Debug("Unfollowing page", "page_id", pageID)

	if err := api.UnfollowPage(pageID); err != nil {
		return fmt.Errorf("failed to unfollow page: %w", err)
	}

	output.PrintSuccess("Unfollowed page")
	return nil
}
