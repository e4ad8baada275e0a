package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Friend request commands",
}

var friendsRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List pending friend requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		friendService := service.NewFriendService()
		return friendService.ListRequests()
	},
}

var friendsAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Send a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		friendService := service.NewFriendService()
		return friendService.SendRequest(args[0])
	},
}

var friendsAcceptCmd = &cobra.Command{
	Use:   "accept <request-id>",
	Short: "Accept a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		friendService := service.NewFriendService()
		return friendService.Accept(args[0])
	},
}

var friendsDeclineCmd = &cobra.Command{
	Use:   "decline <request-id>",
	Short: "Decline a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		friendService := service.NewFriendService()
		return friendService.Decline(args[0])
	},
}

func init() {
	friendsCmd.AddCommand(friendsRequestsCmd)
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsAcceptCmd)
	friendsCmd.AddCommand(friendsDeclineCmd)
}
