package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// ProfileRepository persists derived analysis fields: writing-style and
// negative-pattern analyses on user_preferences, bio on the user profile
type ProfileRepository struct {
	db *sqlx.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// UpdateWritingStyle upserts the user's writing-style analysis
func (r *ProfileRepository) UpdateWritingStyle(ctx context.Context, userID, analysis string) error {
	return r.upsertPreference(ctx, userID, "writing_style_analysis", analysis)
}

// UpdateNegativeAnalysis upserts the user's negative-pattern analysis
func (r *ProfileRepository) UpdateNegativeAnalysis(ctx context.Context, userID, analysis string) error {
	return r.upsertPreference(ctx, userID, "negative_analysis", analysis)
}

// UpdateTopicsOfInterest upserts the user's derived topics
func (r *ProfileRepository) UpdateTopicsOfInterest(ctx context.Context, userID string, topics []domain.TopicInterest) error {
	names := make(jsonStrings, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Topic)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO user_preferences (user_id, topics_of_interest, updated_at)
			VALUES (?, ?, datetime('now'))
			ON CONFLICT(user_id) DO UPDATE SET
				topics_of_interest = excluded.topics_of_interest,
				updated_at = datetime('now')
		`
		_, err := r.db.ExecContext(ctx, query, userID, names)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update topics of interest: %w", err)}
		}
		return nil
	})
}

// UpdateBio updates the user's bio on their profile
func (r *ProfileRepository) UpdateBio(ctx context.Context, userID, bio string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE users SET bio = ?, updated_at = datetime('now') WHERE id = ?", bio, userID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update bio: %w", err)}
		}
		affected, err := res.RowsAffected()
		if err == nil && affected == 0 {
			return &criticalError{err: fmt.Errorf("update bio: user %s not found", userID)}
		}
		return nil
	})
}

// GetPreferences returns the persisted analysis fields for a user, or an
// empty record if none exist yet
func (r *ProfileRepository) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	row := struct {
		UserID       string      `db:"user_id"`
		WritingStyle string      `db:"writing_style_analysis"`
		Negative     string      `db:"negative_analysis"`
		Topics       jsonStrings `db:"topics_of_interest"`
		UpdatedAt    time.Time   `db:"updated_at"`
	}{}

	err := r.db.GetContext(ctx, &row,
		`SELECT user_id, writing_style_analysis, negative_analysis, topics_of_interest, updated_at
		 FROM user_preferences WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.Preferences{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	return &domain.Preferences{
		UserID:               row.UserID,
		WritingStyleAnalysis: row.WritingStyle,
		NegativeAnalysis:     row.Negative,
		TopicsOfInterest:     []string(row.Topics),
		UpdatedAt:            row.UpdatedAt.UTC(),
	}, nil
}

// upsertPreference writes a single text preference column
func (r *ProfileRepository) upsertPreference(ctx context.Context, userID, column, value string) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		// column names come from a fixed internal set, not user input
		query := fmt.Sprintf(`
			INSERT INTO user_preferences (user_id, %s, updated_at)
			VALUES (?, ?, datetime('now'))
			ON CONFLICT(user_id) DO UPDATE SET
				%s = excluded.%s,
				updated_at = datetime('now')
		`, column, column, column)
		_, err := r.db.ExecContext(ctx, query, userID, value)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("update %s: %w", column, err)}
		}
		return nil
	})
}
