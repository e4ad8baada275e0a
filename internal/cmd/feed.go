package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var feedPages int

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Feed commands",
	Long:  "View and interact with your timeline",
}

var feedTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "View your timeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		feedService := service.NewFeedService(sess)
		return feedService.ViewTimeline(feedPages)
	},
}

var feedBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse your timeline interactively",
	Long:  "Browse your timeline with load-more, refresh and reactions",
	RunE: func(cmd *cobra.Command, args []string) error {
		feedService := service.NewFeedService(sess)
		return feedService.Browse()
	},
}

var feedPageCmd = &cobra.Command{
	Use:   "page <page-id>",
	Short: "View a community page's timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feedService := service.NewFeedService(sess)
		return feedService.ViewPageTimeline(args[0], feedPages)
	},
}

var feedPageBrowseCmd = &cobra.Command{
	Use:   "page-browse <page-id>",
	Short: "Browse a community page's timeline interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feedService := service.NewFeedService(sess)
		return feedService.BrowsePage(args[0])
	},
}

func init() {
	feedCmd.PersistentFlags().IntVar(&feedPages, "pages", 1, "Number of timeline pages to load")

	feedCmd.AddCommand(feedTimelineCmd)
	feedCmd.AddCommand(feedBrowseCmd)
	feedCmd.AddCommand(feedPageCmd)
	feedCmd.AddCommand(feedPageBrowseCmd)
}
