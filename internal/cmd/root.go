package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/config"
	"github.com/saymynamenow/lossantos-cli/pkg/credentials"
	clierrors "github.com/saymynamenow/lossantos-cli/pkg/errors"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

var (
	verbose    bool
	configPath string
	outputFmt  string

	// Built in PersistentPreRun and passed into services; nothing
	// below this package reads auth state from a global.
	sess *session.Session
)

var rootCmd = &cobra.Command{
	Use:   "lossantos-cli",
	Short: "Los Santos CLI - Social network client",
	Long: `Los Santos CLI is a command-line client for the Los Santos
social network. Browse your timeline, react to posts, manage friend
requests and pages, and moderate the community from the terminal.`,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := config.Init(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
			os.Exit(1)
		}

		logger.Init(verbose)

		config.SetString("output.format", outputFmt)

		creds, err := credentials.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading credentials: %v\n", err)
			os.Exit(1)
		}

		sess = session.FromCredentials(creds)
		if sess.IsAuthenticated() {
			client.SetAuthToken(creds.AccessToken)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprint(os.Stderr, clierrors.FormatError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ~/.config/lossantos/cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "output", "text", "Output format: text, json, table")

	rootCmd.AddCommand(authCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(friendsCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}
