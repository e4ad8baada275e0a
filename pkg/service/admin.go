package service

import (
	"fmt"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

// AdminService provides moderation operations; every call is gated on
// the session's admin flag before touching the network.
type AdminService struct {
	sess *session.Session
}

// NewAdminService creates a new admin service
func NewAdminService(sess *session.Session) *AdminService {
	return &AdminService{sess: sess}
}

func (as *AdminService) requireAdmin() error {
	if !as.sess.IsAuthenticated() || !as.sess.IsAdmin {
		return fmt.Errorf("admin access required")
	}
	return nil
}

// ListReports displays open moderation reports
func (as *AdminService) ListReports(page, limit int) error {
	if err := as.requireAdmin(); err != nil {
		return err
	}
	logger.Debug("Listing reports", "page", page)

	resp, err := api.GetReports(page, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch reports: %w", err)
	}

	if len(resp.Reports) == 0 {
		fmt.Println("No open reports.")
		return nil
	}

	rows := make([][]string, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		rows = append(rows, []string{
			r.ID, r.TargetType, r.TargetID, r.Reason, r.Status,
		})
	}
	output.PrintTable([]string{"ID", "Target", "Target ID", "Reason", "Status"}, rows)
	return nil
}

// ListVerifications displays pending verification requests
func (as *AdminService) ListVerifications() error {
	if err := as.requireAdmin(); err != nil {
		return err
	}
	logger.Debug("Listing verification requests")

	resp, err := api.GetVerificationRequests()
	if err != nil {
		return fmt.Errorf("failed to fetch verification requests: %w", err)
	}

	if len(resp.Requests) == 0 {
		fmt.Println("No pending verification requests.")
		return nil
	}

	rows := make([][]string, 0, len(resp.Requests))
	for _, r := range resp.Requests {
		rows = append(rows, []string{
			r.ID, "@" + r.Username, r.Reason, r.CreatedAt.Format("2006-01-02"),
		})
	}
	output.PrintTable([]string{"ID", "User", "Reason", "Requested"}, rows)
	return nil
}

// ResolveVerification approves or rejects a verification request
func (as *AdminService) ResolveVerification(requestID string, approve bool) error {
	if err := as.requireAdmin(); err != nil {
		return err
	}
	logger.Debug("Resolving verification", "request_id", requestID, "approve", approve)

	if err := api.ResolveVerification(requestID, approve); err != nil {
		return fmt.Errorf("failed to resolve verification request: %w", err)
	}

	if approve {
		output.PrintSuccess("Verification approved")
	} else {
		output.PrintSuccess("Verification rejected")
	}
	return nil
}

// SuspendUser suspends a user account
func (as *AdminService) SuspendUser(userID, reason string) error {
	if err := as.requireAdmin(); err != nil {
		return err
	}
	logger.Debug("Suspending user", "user_id", userID)

	if err := api.SuspendUser(userID, reason); err != nil {
		return fmt.Errorf("failed to suspend user: %w", err)
	}

	output.PrintSuccess("User suspended")
	return nil
}

// UnsuspendUser lifts a suspension
func (as *AdminService) UnsuspendUser(userID string) error {
	if err := as.requireAdmin(); err != nil {
		return err
	}
	logger.Debug("Unsuspending user", "user_id", userID)

	if err := api.UnsuspendUser(userID); err != nil {
		return fmt.Errorf("failed to unsuspend user: %w", err)
	}

	output.PrintSuccess("Suspension lifted")
	return nil
}
