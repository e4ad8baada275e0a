package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saymynamenow/lossantos-cli/pkg/service"
)

var (
	postImageURL string
	postPageID   string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post commands",
}

var postCreateCmd = &cobra.Command{
	Use:   "create <content>",
	Short: "Create a new post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.CreatePost(args[0], postImageURL, postPageID)
	},
}

var postViewCmd = &cobra.Command{
	Use:   "view <post-id>",
	Short: "View a single post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.ViewPost(args[0])
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		postService := service.NewPostService()
		return postService.DeletePost(args[0])
	},
}

func init() {
	postCreateCmd.Flags().StringVar(&postImageURL, "image", "", "Image URL to attach")
	postCreateCmd.Flags().StringVar(&postPageID, "page", "", "Post on behalf of a page")

	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postViewCmd)
	postCmd.AddCommand(postDeleteCmd)
}
