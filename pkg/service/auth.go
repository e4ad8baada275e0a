package service

import (
	"fmt"
	"time"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/credentials"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

// AuthService handles login, logout and registration
type AuthService struct {
	sess *session.Session
}

// NewAuthService creates a new auth service
func NewAuthService(sess *session.Session) *AuthService {
	return &AuthService{sess: sess}
}

// Login authenticates and stores credentials
func (as *AuthService) Login(username, password string) error {
	logger.Debug("Logging in", "username", username)

	resp, err := api.Login(username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	creds := &credentials.Credentials{
		AccessToken: resp.Token,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		UserID:      resp.User.ID,
		Username:    resp.User.Username,
		Email:       resp.User.Email,
		IsAdmin:     resp.User.IsAdmin,
	}

	if err := credentials.Save(creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	client.SetAuthToken(creds.AccessToken)

	output.PrintSuccess("Logged in as @%s", resp.User.Username)
	return nil
}

// Register creates a new account and stores credentials
func (as *AuthService) Register(req api.RegisterRequest) error {
	logger.Debug("Registering", "username", req.Username)

	resp, err := api.Register(req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	creds := &credentials.Credentials{
		AccessToken: resp.Token,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		UserID:      resp.User.ID,
		Username:    resp.User.Username,
		Email:       resp.User.Email,
	}

	if err := credentials.Save(creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	client.SetAuthToken(creds.AccessToken)

	output.PrintSuccess("Welcome to Los Santos, @%s", resp.User.Username)
	return nil
}

// Logout invalidates the session and removes stored credentials
func (as *AuthService) Logout() error {
	logger.Debug("Logging out")

	if err := api.Logout(); err != nil {
		// Server-side logout is best effort; local teardown proceeds.
		logger.Warn("Server logout failed", "error", err)
	}

	if err := credentials.Delete(); err != nil {
		return fmt.Errorf("failed to remove credentials: %w", err)
	}

	client.ClearAuthToken()
	as.sess.Teardown()

	output.PrintSuccess("Logged out")
	return nil
}

// WhoAmI displays the current authenticated user
func (as *AuthService) WhoAmI() error {
	if !as.sess.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}

	user, err := api.GetMe()
	if err != nil {
		return fmt.Errorf("failed to fetch current user: %w", err)
	}

	fmt.Printf("@%s", user.Username)
	if user.IsVerified {
		fmt.Printf(" [verified]")
	}
	if user.IsAdmin {
		fmt.Printf(" [admin]")
	}
	fmt.Printf("\n")
	if user.Name != "" {
		fmt.Printf("Name:  %s\n", user.Name)
	}
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Joined: %s\n", user.CreatedAt.Format("2006-01-02"))
	return nil
}
