package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var (
	adminPage  int
	adminLimit int
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Moderation commands (admin only)",
}

var adminReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List open moderation reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		adminService := service.NewAdminService(sess)
		return adminService.ListReports(adminPage, adminLimit)
	},
}

var adminVerificationsCmd = &cobra.Command{
	Use:   "verifications",
	Short: "List pending verification requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		adminService := service.NewAdminService(sess)
		return adminService.ListVerifications()
	},
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve <request-id>",
	Short: "Approve a verification request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminService := service.NewAdminService(sess)
		return adminService.ResolveVerification(args[0], true)
	},
}

var adminRejectCmd = &cobra.Command{
	Use:   "reject <request-id>",
	Short: "Reject a verification request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminService := service.NewAdminService(sess)
		return adminService.ResolveVerification(args[0], false)
	},
}

var adminSuspendCmd = &cobra.Command{
	Use:   "suspend <user-id> <reason>",
	Short: "Suspend a user account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminService := service.NewAdminService(sess)
		return adminService.SuspendUser(args[0], args[1])
	},
}

var adminUnsuspendCmd = &cobra.Command{
	Use:   "unsuspend <user-id>",
	Short: "Lift a user suspension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adminService := service.NewAdminService(sess)
		return adminService.UnsuspendUser(args[0])
	},
}

func init() {
	adminReportsCmd.Flags().IntVar(&adminPage, "page", 1, "Page number")
	adminReportsCmd.Flags().IntVar(&adminLimit, "limit", 20, "Results per page")

	adminCmd.AddCommand(adminReportsCmd)
	adminCmd.AddCommand(adminVerificationsCmd)
	adminCmd.AddCommand(adminApproveCmd)
	adminCmd.AddCommand(adminRejectCmd)
	adminCmd.AddCommand(adminSuspendCmd)
	adminCmd.AddCommand(adminUnsuspendCmd)
}
