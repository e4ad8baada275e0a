package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var (
	profileName string
	profileBio  string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
}

var profileViewCmd = &cobra.Command{
	Use:   "view <username>",
	Short: "View a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.ViewProfile(args[0])
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.UpdateProfile(profileName, profileBio)
	},
}

var profileVerifyCmd = &cobra.Command{
	Use:   "request-verification <reason>",
	Short: "Request account verification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profileService := service.NewProfileService()
		return profileService.RequestVerification(args[0])
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "Profile bio")

	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileVerifyCmd)
}
