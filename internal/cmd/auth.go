package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/prompter"
	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
}

var authLoginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in to Los Santos",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var username string
		var err error

		if len(args) > 0 {
			username = args[0]
		} else {
			username, err = prompter.PromptString("Username: ")
			if err != nil {
				return err
			}
		}

		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}

		authService := service.NewAuthService(sess)
		return authService.Login(username, password)
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, err := prompter.PromptString("Username: ")
		if err != nil {
			return err
		}
		email, err := prompter.PromptString("Email: ")
		if err != nil {
			return err
		}
		name, err := prompter.PromptString("Display name (optional): ")
		if err != nil {
			return err
		}
		password, err := prompter.PromptPassword("Password: ")
		if err != nil {
			return err
		}

		authService := service.NewAuthService(sess)
		return authService.Register(api.RegisterRequest{
			Username: username,
			Email:    email,
			Name:     name,
			Password: password,
		})
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and remove stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		authService := service.NewAuthService(sess)
		return authService.Logout()
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user",
	RunE: func(cmd *cobra.Command, args []string) error {
		authService := service.NewAuthService(sess)
		return authService.WhoAmI()
	},
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
}
