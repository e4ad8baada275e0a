package api

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// ReportListResponse lists moderation reports
type ReportListResponse struct {
	Reports []Report `json:"reports"`
	Count   int      `json:"count"`
}

// VerificationListResponse lists pending verification requests
type VerificationListResponse struct {
	Requests []VerificationRequest `json:"requests"`
	Count    int                   `json:"count"`
}

// GetReports retrieves open moderation reports (admin only)
func GetReports(page, limit int) (*ReportListResponse, error) {
	logger.Debug("Fetching reports", "page", page)

	var response ReportListResponse

	resp, err := client.GetClient().
		R().
		SetQueryParams(map[string]string{
			"page":  fmt.Sprintf("%d", page),
			"limit": fmt.Sprintf("%d", limit),
		}).
		SetResult(&response).
		Get("/api/admin/reports")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// GetVerificationRequests retrieves pending verification requests (admin only)
func GetVerificationRequests() (*VerificationListResponse, error) {
	logger.Debug("Fetching verification requests")

	var response VerificationListResponse

	resp, err := client.GetClient().
		R().
		SetResult(&response).
		Get("/api/admin/verifications")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	return &response, nil
}

// ResolveVerification approves or rejects a verification request (admin only)
func ResolveVerification(requestID string, approve bool) error {
	action := "reject"
	if approve {
		action = "approve"
	}
	logger.Debug("Resolving verification request", "request_id", requestID, "action", action)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/admin/verifications/%s/%s", requestID, action))

	return CheckResponse(resp, err)
}

// SuspendUser suspends a user account (admin only)
func SuspendUser(userID, reason string) error {
	logger.Debug("Suspending user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		SetBody(map[string]string{"reason": reason}).
		Post(fmt.Sprintf("/api/admin/users/%s/suspend", userID))

	return CheckResponse(resp, err)
}

// UnsuspendUser lifts a user suspension (admin only)
func UnsuspendUser(userID string) error {
	logger.Debug("Unsuspending user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Post(fmt.Sprintf("/api/admin/users/%s/unsuspend", userID))

	return CheckResponse(resp, err)
}
