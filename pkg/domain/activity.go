package domain

import "time"

// PostStatus represents the lifecycle state of a post
type PostStatus string

// post statuses
const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusPosted    PostStatus = "posted"
	PostStatusDismissed PostStatus = "dismissed"
)

// FeedbackType represents explicit user feedback on a post
type FeedbackType string

// feedback types
const (
	FeedbackPositive FeedbackType = "positive"
	FeedbackNegative FeedbackType = "negative"
)

// Post represents a generated post the user scheduled, published or dismissed
type Post struct {
	ID        string
	UserID    string
	Status    PostStatus
	Feedback  FeedbackType // empty when no explicit feedback was given
	Content   string
	Topics    []string
	CreatedAt time.Time
}

// Scheduled reports whether the post counts toward scheduled activity
func (p *Post) Scheduled() bool {
	return p.Status == PostStatusScheduled || p.Status == PostStatusPosted
}

// Dismissed reports whether the post counts toward dismissed activity
func (p *Post) Dismissed() bool {
	return p.Status == PostStatusDismissed || p.Feedback == FeedbackNegative
}

// Conversation represents a chat between the user and the assistant.
// A conversation spawned from an idea bank entry carries its id; the first
// user message in such a conversation restates the idea and is excluded
// from activity counting.
type Conversation struct {
	ID         string
	UserID     string
	IdeaBankID *string
	CreatedAt  time.Time
}

// Message represents a single conversation message
type Message struct {
	ID             string
	ConversationID string
	Role           string
	Content        string
	CreatedAt      time.Time
}

// ActivityCounts summarizes a user's qualifying activity since last analysis
type ActivityCounts struct {
	Scheduled      int  `json:"scheduled"`
	Dismissed      int  `json:"dismissed"`
	TotalPosts     int  `json:"total_posts"`
	Messages       int  `json:"messages"`
	MeetsThreshold bool `json:"meets_threshold"`
}

// UserActivity pairs a user with the activity counts that qualified them
type UserActivity struct {
	User   User
	Counts ActivityCounts
}

// UserContent holds full incremental content payloads for one analysis run
type UserContent struct {
	Posts    []Post
	Messages []Message
}

// ScheduledPosts returns posts counting as scheduled activity
func (c *UserContent) ScheduledPosts() []Post {
	var res []Post
	for i := range c.Posts {
		if c.Posts[i].Scheduled() {
			res = append(res, c.Posts[i])
		}
	}
	return res
}

// DismissedPosts returns posts dismissed without explicit negative feedback
func (c *UserContent) DismissedPosts() []Post {
	var res []Post
	for i := range c.Posts {
		if c.Posts[i].Status == PostStatusDismissed && c.Posts[i].Feedback != FeedbackNegative {
			res = append(res, c.Posts[i])
		}
	}
	return res
}

// NegativeFeedbackPosts returns posts with explicit negative feedback
func (c *UserContent) NegativeFeedbackPosts() []Post {
	var res []Post
	for i := range c.Posts {
		if c.Posts[i].Feedback == FeedbackNegative {
			res = append(res, c.Posts[i])
		}
	}
	return res
}
