package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var (
	pagesPage  int
	pagesLimit int
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Community page commands",
}

var pagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List community pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		pageService := service.NewPageService()
		return pageService.ListPages(pagesPage, pagesLimit)
	},
}

var pagesViewCmd = &cobra.Command{
	Use:   "view <page-id>",
	Short: "View a page's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageService := service.NewPageService()
		return pageService.ViewPage(args[0])
	},
}

var pagesFollowCmd = &cobra.Command{
	Use:   "follow <page-id>",
	Short: "Follow a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageService := service.NewPageService()
		return pageService.Follow(args[0])
	},
}

var pagesUnfollowCmd = &cobra.Command{
	Use:   "unfollow <page-id>",
	Short: "Unfollow a page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageService := service.NewPageService()
		return pageService.Unfollow(args[0])
	},
}

func init() {
	pagesListCmd.Flags().IntVar(&pagesPage, "page", 1, "Page number")
	pagesListCmd.Flags().IntVar(&pagesLimit, "limit", 20, "Results per page")

	pagesCmd.AddCommand(pagesListCmd)
	pagesCmd.AddCommand(pagesViewCmd)
	pagesCmd.AddCommand(pagesFollowCmd)
	pagesCmd.AddCommand(pagesUnfollowCmd)
}
