package api

import "time"

// Auth Request/Response Types
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
	User      User   `json:"user"`
}

type User struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	Email          string     `json:"email"`
	Name           string     `json:"name,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty"`
	IsVerified     bool       `json:"isVerified"`
	IsAdmin        bool       `json:"isAdmin"`
	IsSuspended    bool       `json:"isSuspended"`
	FriendCount    int        `json:"friendCount"`
	PostCount      int        `json:"postCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	SuspendedAt    *time.Time `json:"suspendedAt,omitempty"`
}

// Reaction is one user's reaction on one post. The server keeps at most
// one reaction per (user, post); reacting again with the same type
// removes it, a different type replaces it.
type Reaction struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	UserID    string    `json:"userId"`
	PostID    string    `json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a timeline post. IsBoosted and BoostedAt are owned by the
// client: the boosted-posts endpoint is the only place boost metadata
// comes from, and regular post responses never carry it.
type Post struct {
	ID             string     `json:"id"`
	UserID         string     `json:"userId"`
	AuthorUsername string     `json:"authorUsername,omitempty"`
	PageID         string     `json:"pageId,omitempty"`
	Content        string     `json:"content"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Reactions      []Reaction `json:"reactions"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	IsBoosted bool      `json:"-"`
	BoostedAt time.Time `json:"-"`
}

// BoostedPost is the envelope the boosted-posts endpoint wraps posts in.
type BoostedPost struct {
	Post      Post      `json:"post"`
	BoostedAt time.Time `json:"boostedAt"`
}

// Page is a fan/community page that owns its own timeline.
type Page struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	OwnerID       string    `json:"ownerId"`
	FollowerCount int       `json:"followerCount"`
	IsVerified    bool      `json:"isVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FriendRequest is a pending friend request.
type FriendRequest struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// VerificationRequest is a pending account-verification request.
type VerificationRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"` // pending, approved, rejected
	CreatedAt time.Time `json:"createdAt"`
}

// Report is a moderation report filed against a post or user.
type Report struct {
	ID         string    `json:"id"`
	ReporterID string    `json:"reporterId"`
	TargetType string    `json:"targetType"` // post, user
	TargetID   string    `json:"targetId"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Error Response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
