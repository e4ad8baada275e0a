package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/saymynamenow/lossantos-cli/pkg/client"
	"github.com/saymynamenow/lossantos-cli/pkg/logger"
)

// ReactionRequest is the body of a react-to-post call.
type ReactionRequest struct {
	Type string `json:"type"`
}

// reactionPostPayload covers both key names the server has used for the
// reaction list on a post: "reactions" and the legacy Prisma-relation
// name "Reaction".
type reactionPostPayload struct {
	Reactions []Reaction `json:"reactions"`
	Legacy    []Reaction `json:"Reaction"`
}

type reactionResponse struct {
	Post reactionPostPayload `json:"post"`
}

func (p *reactionPostPayload) items() []Reaction {
	if p.Reactions != nil {
		return p.Reactions
	}
	if p.Legacy != nil {
		return p.Legacy
	}
	return []Reaction{}
}

// ReactToPost toggles or sets the current user's reaction on a post and
// returns the post's authoritative reaction set.
func ReactToPost(postID, reactionType string) ([]Reaction, error) {
	logger.Debug("Reacting to post", "post_id", postID, "type", reactionType)

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(ReactionRequest{Type: reactionType}).
		Post(fmt.Sprintf("/api/posts/%s/react", postID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, fmt.Errorf("failed to react to post: %w", err)
	}

	var response reactionResponse
	if err := json.Unmarshal(resp.Body(), &response); err != nil {
		// A body we can't decode is treated as an empty reaction set
		// rather than a failed reaction; the write itself succeeded.
		logger.Warn("Unparseable reaction response", "post_id", postID, "error", err)
		return []Reaction{}, nil
	}

	return response.Post.items(), nil
}
