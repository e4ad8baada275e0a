package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saymynamenow/lossantos-cli/pkg/api"
	"github.com/saymynamenow/lossantos-cli/pkg/config"
	"github.com/saymynamenow/lossantos-cli/pkg/feed"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
	"github.com/saymynamenow/lossantos-cli/pkg/output"
	"github.com/saymynamenow/lossantos-cli/pkg/prompter"
	"github.com/saymynamenow/lossantos-cli/pkg/session"
)

// FeedService renders aggregated timelines and drives reactions
// through the feed engine.
type FeedService struct {
	sess *session.Session
}

// NewFeedService creates a new feed service
func NewFeedService(sess *session.Session) *FeedService {
	return &FeedService{sess: sess}
}

func pageSize() int {
	size := config.GetInt("feed.page_size")
	if size <= 0 {
		size = 5
	}
	return size
}

// ViewTimeline displays the home timeline, following the cursor for
// up to maxPages pages.
func (fs *FeedService) ViewTimeline(maxPages int) error {
	logger.Debug("Viewing timeline", "max_pages", maxPages)
	return fs.view("Your Timeline", feed.HomeSource{}, maxPages)
}

// ViewPageTimeline displays a community page's timeline.
func (fs *FeedService) ViewPageTimeline(pageID string, maxPages int) error {
	logger.Debug("Viewing page timeline", "page_id", pageID, "max_pages", maxPages)

	page, err := api.GetPage(pageID)
	if err != nil {
		return fmt.Errorf("failed to fetch page: %w", err)
	}

	title := page.Name
	if page.IsVerified {
		title += " [verified]"
	}
	return fs.view(title, feed.PageSource{PageID: pageID}, maxPages)
}

func (fs *FeedService) view(title string, src feed.Source, maxPages int) error {
	f := feed.New(src, fs.sess, pageSize())
	defer f.Close()

	if err := f.LoadInitial(); err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	for loaded := 1; loaded < maxPages && f.HasMore(); loaded++ {
		if err := f.LoadMore(); err != nil {
			// Keep what we already have on screen.
			output.PrintWarning("Could not load more posts: %v", err)
			break
		}
	}

	posts := f.Posts()
	if len(posts) == 0 {
		fmt.Println("No posts in this feed.")
		return nil
	}

	fmt.Printf("\n%s\n\n", title)
	displayPosts(posts)

	if f.HasMore() {
		fmt.Println("More posts available. Use --pages to load more, or 'feed browse'.")
	}
	return nil
}

// Browse opens the home timeline in an interactive loop: load more
// pages, react to posts, refresh. Reactions render immediately and
// reconcile with the server in the background.
func (fs *FeedService) Browse() error {
	return fs.browse("Your Timeline", feed.HomeSource{})
}

// BrowsePage opens a community page's timeline interactively.
func (fs *FeedService) BrowsePage(pageID string) error {
	return fs.browse("Page Timeline", feed.PageSource{PageID: pageID})
}

func (fs *FeedService) browse(title string, src feed.Source) error {
	f := feed.New(src, fs.sess, pageSize())
	defer func() {
		f.Close()
		f.Wait()
	}()

	if err := f.LoadInitial(); err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	for {
		posts := f.Posts()

		fmt.Printf("\n%s\n\n", title)
		if len(posts) == 0 {
			fmt.Println("No posts in this feed.")
		} else {
			displayPosts(posts)
		}

		prompt := "[m]ore  [r]eact <n> <type>  [f]resh  [q]uit > "
		if !f.HasMore() {
			prompt = "[r]eact <n> <type>  [f]resh  [q]uit > "
		}

		fields, err := prompter.PromptCommand(prompt)
		if err != nil {
			return nil // EOF ends the session
		}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "m", "more":
			if err := f.LoadMore(); err != nil {
				output.PrintWarning("Could not load more posts: %v", err)
			}
		case "f", "fresh", "refresh":
			if err := f.Refresh(); err != nil {
				output.PrintWarning("Could not refresh: %v", err)
			}
		case "r", "react":
			if len(fields) < 3 {
				output.PrintWarning("Usage: r <post-number> <type>  e.g. r 1 like")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > len(posts) {
				output.PrintWarning("No such post: %s", fields[1])
				continue
			}
			// Optimistic: the next render shows the reaction even if
			// the server hasn't answered yet.
			f.React(posts[n-1].ID, fields[2])
		default:
			output.PrintWarning("Unknown command: %s", fields[0])
		}
	}
}

// displayPosts renders the aggregated list; boosted posts carry a marker.
func displayPosts(posts []api.Post) {
	for i, post := range posts {
		marker := ""
		if post.IsBoosted {
			marker = " [BOOSTED]"
		}

		author := post.AuthorUsername
		if author == "" {
			author = post.UserID
		}

		fmt.Printf("%d. @%s%s\n", i+1, author, marker)
		fmt.Printf("   %s\n", post.Content)
		if summary := reactionSummary(post.Reactions); summary != "" {
			fmt.Printf("   %s\n", summary)
		}
		fmt.Printf("   %s\n\n", post.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

// reactionSummary folds a reaction list into "like x2, love x1" form,
// ordered by first appearance.
func reactionSummary(reactions []api.Reaction) string {
	if len(reactions) == 0 {
		return ""
	}

	counts := map[string]int{}
	var order []string
	for _, r := range reactions {
		if counts[r.Type] == 0 {
			order = append(order, r.Type)
		}
		counts[r.Type]++
	}

	parts := make([]string, 0, len(order))
	for _, t := range order {
		parts = append(parts, fmt.Sprintf("%s x%d", t, counts[t]))
	}
	return strings.Join(parts, ", ")
}
