package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// UpdateProfileRequest updates profile fields; empty fields are left unchanged
type UpdateProfileRequest struct {
	Name string `json:"name,omitempty"`
	Bio  string `json:"bio,omitempty"`
}

// GetProfile retrieves a user's profile by username
func GetProfile(username string) (*User, error) {
	logger.Debug("Fetching profile", "username", username)

	var response struct {
		User User `json:"user"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get(fmt.Sprintf("/api/users/%s", username))

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch profile: %s", resp.Status())
	}

	return &response.User, nil
}

// UpdateProfile updates the current user's profile
func UpdateProfile(req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	var response struct {
		User User `json:"user"`
	}

	resp, err := client.GetClient().
		R().
		SetBody(req).
		SetResult(&response).
		Put("/api/users/me")

	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to update profile: %s", resp.Status())
	}

	return &response.User, nil
}

// RequestVerification files an account-verification request
func RequestVerification(reason string) error {
	logger.Debug("Requesting verification")

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"reason": reason}).
		Post("/api/users/me/verification")

	if err != nil {
		return fmt.Errorf("failed to request verification: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("failed to request verification: %s", resp.Status())
	}

	return nil
}
