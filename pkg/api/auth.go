package api

import (
	json "github.com/json-iterator/go"
	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// Login authenticates a user with username and password
func Login(username, password string) (*LoginResponse, error) {
	logger.Debug("Attempting login", "username", username)

	req := LoginRequest{
		Username: username,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/auth/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "username", loginResp.User.Username)
	return &loginResp, nil
}

// Register creates a new account
func Register(req RegisterRequest) (*LoginResponse, error) {
	logger.Debug("Registering account", "username", req.Username)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/api/auth/register")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var registerResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &registerResp); err != nil {
		return nil, err
	}

	return &registerResp, nil
}

// GetMe retrieves the current authenticated user
func GetMe() (*User, error) {
	logger.Debug("Fetching current user")

	var response struct {
		User User `json:"user"`
	}

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/auth/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response.User, nil
}

// Logout invalidates the current session server-side
func Logout() error {
	logger.Debug("Logging out")

	resp, err := client.GetClient().
		R().
		Post("/api/auth/logout")

	return CheckResponse(resp, err)
}
