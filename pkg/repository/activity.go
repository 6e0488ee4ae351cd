package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// ActivityRepository reads user activity: posts, conversations and messages.
// The analysis pipeline reads but never owns these rows.
type ActivityRepository struct {
	db *sqlx.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// jsonStrings is a JSON array of strings for SQL operations
type jsonStrings []string

// Value implements driver.Valuer for database storage
func (j jsonStrings) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner for database retrieval
func (j *jsonStrings) Scan(value interface{}) error {
	if value == nil {
		*j = jsonStrings{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*j = jsonStrings{}
		return nil
	}

	return json.Unmarshal(data, j)
}

// userSQL mirrors a users row
type userSQL struct {
	ID        string     `db:"id"`
	Email     string     `db:"email"`
	Bio       string     `db:"bio"`
	IsActive  bool       `db:"is_active"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (u *userSQL) toDomain() domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Bio:       u.Bio,
		IsActive:  u.IsActive,
		DeletedAt: u.DeletedAt,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

// postSQL mirrors a posts row
type postSQL struct {
	ID        string      `db:"id"`
	UserID    string      `db:"user_id"`
	Status    string      `db:"status"`
	Feedback  string      `db:"feedback_type"`
	Content   string      `db:"content"`
	Topics    jsonStrings `db:"topics"`
	CreatedAt time.Time   `db:"created_at"`
}

func (p *postSQL) toDomain() domain.Post {
	return domain.Post{
		ID:        p.ID,
		UserID:    p.UserID,
		Status:    domain.PostStatus(p.Status),
		Feedback:  domain.FeedbackType(p.Feedback),
		Content:   p.Content,
		Topics:    []string(p.Topics),
		CreatedAt: p.CreatedAt.UTC(),
	}
}

// GetUser returns a single user
func (r *ActivityRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var row userSQL
	err := r.db.GetContext(ctx, &row,
		"SELECT id, email, bio, is_active, deleted_at, created_at, updated_at FROM users WHERE id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s not found", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u := row.toDomain()
	return &u, nil
}

// GetActiveUsers returns all active, non-deleted users
func (r *ActivityRepository) GetActiveUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, email, bio, is_active, deleted_at, created_at, updated_at FROM users WHERE is_active = 1 AND deleted_at IS NULL ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("get active users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i := range rows {
		users[i] = rows[i].toDomain()
	}
	return users, nil
}

// CountActivity computes post and message counts for a user since the given
// time (or over all content when since is nil). Does not set MeetsThreshold,
// the threshold checker owns qualification.
func (r *ActivityRepository) CountActivity(ctx context.Context, userID string, since *time.Time) (domain.ActivityCounts, error) {
	var counts domain.ActivityCounts

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status IN ('scheduled', 'posted') THEN 1 ELSE 0 END), 0) AS scheduled,
			COALESCE(SUM(CASE WHEN status = 'dismissed' OR feedback_type = 'negative' THEN 1 ELSE 0 END), 0) AS dismissed,
			COUNT(*) AS total
		FROM posts
		WHERE user_id = ?
		  AND (status IN ('scheduled', 'posted', 'dismissed') OR feedback_type = 'negative')
	`
	args := []interface{}{userID}
	if since != nil {
		query += " AND created_at > ?"
		args = append(args, sqlTime(*since))
	}

	row := struct {
		Scheduled int `db:"scheduled"`
		Dismissed int `db:"dismissed"`
		Total     int `db:"total"`
	}{}
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return counts, fmt.Errorf("count posts: %w", err)
	}
	counts.Scheduled = row.Scheduled
	counts.Dismissed = row.Dismissed
	counts.TotalPosts = row.Total

	messages, err := r.countMessages(ctx, userID, since)
	if err != nil {
		return counts, err
	}
	counts.Messages = messages

	return counts, nil
}

// countMessages counts user-authored messages per conversation, subtracting
// the first message of each idea-bank-linked conversation
func (r *ActivityRepository) countMessages(ctx context.Context, userID string, since *time.Time) (int, error) {
	query := `
		SELECT CASE WHEN c.idea_bank_id IS NOT NULL THEN 1 ELSE 0 END AS linked,
		       COUNT(m.id) AS cnt
		FROM conversations c
		JOIN messages m ON m.conversation_id = c.id
		WHERE c.user_id = ? AND m.role = 'user'
	`
	args := []interface{}{userID}
	if since != nil {
		query += " AND c.created_at > ? AND m.created_at > ?"
		args = append(args, sqlTime(*since), sqlTime(*since))
	}
	query += " GROUP BY c.id, c.idea_bank_id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var linked, cnt int
		if err := rows.Scan(&linked, &cnt); err != nil {
			return 0, fmt.Errorf("scan message count: %w", err)
		}
		if linked == 1 && cnt >= 1 {
			cnt-- // first user message restates the idea bank entry
		}
		total += cnt
	}
	return total, rows.Err()
}

// GetContentSince returns full content payloads for qualifying posts and
// user messages created after since, applying the same filters and idea-bank
// exclusion as CountActivity
func (r *ActivityRepository) GetContentSince(ctx context.Context, userID string, since *time.Time) (*domain.UserContent, error) {
	content := &domain.UserContent{}

	postQuery := `
		SELECT id, user_id, status, feedback_type, content, topics, created_at
		FROM posts
		WHERE user_id = ?
		  AND (status IN ('scheduled', 'posted', 'dismissed') OR feedback_type = 'negative')
	`
	args := []interface{}{userID}
	if since != nil {
		postQuery += " AND created_at > ?"
		args = append(args, sqlTime(*since))
	}
	postQuery += " ORDER BY created_at ASC, id ASC"

	var postRows []postSQL
	if err := r.db.SelectContext(ctx, &postRows, postQuery, args...); err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}
	for i := range postRows {
		content.Posts = append(content.Posts, postRows[i].toDomain())
	}

	messages, err := r.getMessagesSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	content.Messages = messages

	return content, nil
}

// getMessagesSince retrieves user messages with the idea-bank first-message
// exclusion applied
func (r *ActivityRepository) getMessagesSince(ctx context.Context, userID string, since *time.Time) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.conversation_id, m.role, m.content, m.created_at,
		       CASE WHEN c.idea_bank_id IS NOT NULL THEN 1 ELSE 0 END AS linked
		FROM conversations c
		JOIN messages m ON m.conversation_id = c.id
		WHERE c.user_id = ? AND m.role = 'user'
	`
	args := []interface{}{userID}
	if since != nil {
		query += " AND c.created_at > ? AND m.created_at > ?"
		args = append(args, sqlTime(*since), sqlTime(*since))
	}
	query += " ORDER BY m.conversation_id ASC, m.created_at ASC, m.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	defer rows.Close()

	var res []domain.Message
	seenFirst := make(map[string]bool) // conversation id -> first message already skipped
	for rows.Next() {
		var m domain.Message
		var linked int
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Role, &m.Content, &m.CreatedAt, &linked); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		if linked == 1 && !seenFirst[m.ConversationID] {
			seenFirst[m.ConversationID] = true
			continue
		}
		m.CreatedAt = m.CreatedAt.UTC()
		res = append(res, m)
	}
	return res, rows.Err()
}
