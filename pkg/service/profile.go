package service

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
)

// ProfileService manages user profiles
type ProfileService struct{}

// NewProfileService creates a new profile service
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// ViewProfile displays a user's profile
func (ps *ProfileService) ViewProfile(username string) error {
	logger.Debug("Viewing profile", "username", username)

	user, err := api.GetProfile(username)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	fmt.Printf("\n@%s", user.Username)
	if user.IsVerified {
		fmt.Printf(" [verified]")
	}
	if user.IsSuspended {
		fmt.Printf(" [suspended]")
	}
	fmt.Printf("\n")
	if user.Name != "" {
		fmt.Printf("%s\n", user.Name)
	}
	if user.Bio != "" {
		fmt.Printf("Bio: %s\n", user.Bio)
	}
	fmt.Printf("Friends: %d | Posts: %d\n", user.FriendCount, user.PostCount)
	fmt.Printf("Joined: %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}

// UpdateProfile updates the current user's profile
func (ps *ProfileService) UpdateProfile(name, bio string) error {
	logger.Debug("Updating profile")

	user, err := api.UpdateProfile(api.UpdateProfileRequest{
		Name: name,
		Bio:  bio,
	})
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	output.PrintSuccess("Profile updated for @%s", user.Username)
	return nil
}

// RequestVerification files a verification request
func (ps *ProfileService) RequestVerification(reason string) error {
	logger.Debug("Requesting verification")

	if err := api.RequestVerification(reason); err != nil {
		return fmt.Errorf("failed to request verification: %w", err)
	}

	output.PrintSuccess("Verification request submitted")
	return nil
}
