package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// FriendRequestsResponse lists pending friend requests
type FriendRequestsResponse struct {
	Requests []FriendRequest `json:"requests"`
	Count    int             `json:"count"`
}

// GetFriendRequests retrieves pending friend requests for the current user
func GetFriendRequests() (*FriendRequestsResponse, error) {
	logger.Debug("Getting friend requests")

	var response FriendRequestsResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/friends/requests")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to get friend requests: %s", resp.Status())
	}

	return &response, nil
}

// SendFriendRequest sends a friend request to a user
func SendFriendRequest(username string) error {
	logger.Debug("Sending friend request", "username", username)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"username": username}).
		Post("/api/friends/requests")

	if err != nil {
		return fmt.Errorf("failed to send friend request: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to send friend request: %s", resp.Status())
	}

	return nil
}

// AcceptFriendRequest accepts a pending friend request
func AcceptFriendRequest(requestID string) error {
	logger.Debug("Accepting friend request", "request_id", requestID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/friends/requests/%s/accept", requestID))

	if err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to accept friend request: %s", resp.Status())
	}

	return nil
}

// DeclineFriendRequest declines a pending friend request
func DeclineFriendRequest(requestID string) error {
	logger.Debug("Declining friend request", "request_id", requestID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/friends/requests/%s/decline", requestID))

	if err != nil {
		return fmt.Errorf("failed to decline friend request: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to decline friend request: %s", resp.Status())
	}

	return nil
}
