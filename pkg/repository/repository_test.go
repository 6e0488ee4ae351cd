package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repos.Close())
	})
	return repos
}

func seedUser(t *testing.T, repos *Repositories, id, bio string) {
	t.Helper()
	_, err := repos.DB.Exec(
		"INSERT INTO users (id, email, bio) VALUES (?, ?, ?)", id, id+"@example.com", bio)
	require.NoError(t, err)
}

func seedPost(t *testing.T, repos *Repositories, id, userID, status, feedback, content string, createdAt time.Time) {
	t.Helper()
	_, err := repos.DB.Exec(
		"INSERT INTO posts (id, user_id, status, feedback_type, content, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, userID, status, feedback, content, sqlTime(createdAt))
	require.NoError(t, err)
}

func seedConversation(t *testing.T, repos *Repositories, id, userID string, ideaBankID *string, createdAt time.Time) {
	t.Helper()
	_, err := repos.DB.Exec(
		"INSERT INTO conversations (id, user_id, idea_bank_id, created_at) VALUES (?, ?, ?, ?)",
		id, userID, ideaBankID, sqlTime(createdAt))
	require.NoError(t, err)
}

func seedMessage(t *testing.T, repos *Repositories, id, convID, role, content string, createdAt time.Time) {
	t.Helper()
	_, err := repos.DB.Exec(
		"INSERT INTO messages (id, conversation_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)",
		id, convID, role, content, sqlTime(createdAt))
	require.NoError(t, err)
}

func TestRepositories_Setup(t *testing.T) {
	repos := setupTestRepos(t)

	require.NoError(t, repos.Ping(context.Background()))

	// schema is idempotent, running it again must not fail
	require.NoError(t, initSchema(context.Background(), repos.DB))
}
