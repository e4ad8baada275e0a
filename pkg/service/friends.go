package service

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
)

// FriendService manages friend requests
type FriendService struct{}

// NewFriendService creates a new friend service
func NewFriendService() *FriendService {
	return &FriendService{}
}

// ListRequests displays pending friend requests
func (fs *FriendService) ListRequests() error {
	logger.Debug("Listing friend requests")

	resp, err := api.GetFriendRequests()
	if err != nil {
		return fmt.Errorf("failed to fetch friend requests: %w", err)
	}

	if len(resp.Requests) == 0 {
		fmt.Println("No pending friend requests.")
		return nil
	}

	fmt.Printf("\nPending Friend Requests (%d)\n\n", resp.Count)
	for i, req := range resp.Requests {
		fmt.Printf("%d. @%s", i+1, req.Username)
		if req.Name != "" {
			fmt.Printf(" (%s)", req.Name)
		}
		fmt.Printf("\n   Sent: %s  [id: %s]\n\n", req.CreatedAt.Format("2006-01-02"), req.ID)
	}
	return nil
}

// SendRequest sends a friend request
func (fs *FriendService) SendRequest(username string) error {
	logger.Debug("Sending friend request", "username", username)

	if err := api.SendFriendRequest(username); err != nil {
		return fmt.Errorf("failed to send friend request: %w", err)
	}

	output.PrintSuccess("Friend request sent to @%s", username)
	return nil
}

// Accept accepts a pending friend request
func (fs *FriendService) Accept(requestID string) error {
	logger.Debug("Accepting friend request", "request_id", requestID)

	if err := api.AcceptFriendRequest(requestID); err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}

	output.PrintSuccess("Friend request accepted")
	return nil
}

// Decline declines a pending friend request
func (fs *FriendService) Decline(requestID string) error {
	logger.Debug("Declining friend request", "request_id", requestID)

	if err := api.DeclineFriendRequest(requestID); err != nil {
		return fmt.Errorf("failed to decline friend request: %w", err)
	}

	output.PrintSuccess("Friend request declined")
	return nil
}
