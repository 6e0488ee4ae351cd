package domain

import "time"

// User represents an end user whose activity is analyzed
type User struct {
	ID        string
	Email     string
	Bio       string
	IsActive  bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Preferences holds per-user analysis outputs persisted between runs
type Preferences struct {
	UserID               string
	WritingStyleAnalysis string
	NegativeAnalysis     string
	TopicsOfInterest     []string
	UpdatedAt            time.Time
}
