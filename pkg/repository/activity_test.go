package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_GetUser(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	seedUser(t, repos, "u1", "backend engineer")

	u, err := repos.Activity.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "backend engineer", u.Bio)
	assert.True(t, u.IsActive)

	_, err = repos.Activity.GetUser(ctx, "nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestActivityRepository_GetActiveUsers(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	seedUser(t, repos, "u1", "")
	seedUser(t, repos, "u2", "")
	seedUser(t, repos, "u3", "")

	_, err := repos.DB.Exec("UPDATE users SET is_active = 0 WHERE id = 'u2'")
	require.NoError(t, err)
	_, err = repos.DB.Exec("UPDATE users SET deleted_at = datetime('now') WHERE id = 'u3'")
	require.NoError(t, err)

	users, err := repos.Activity.GetActiveUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestActivityRepository_CountActivity(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	seedUser(t, repos, "u1", "")
	now := time.Now().UTC()

	seedPost(t, repos, "p1", "u1", "scheduled", "", "a", now.Add(-5*time.Hour))
	seedPost(t, repos, "p2", "u1", "posted", "", "b", now.Add(-4*time.Hour))
	seedPost(t, repos, "p3", "u1", "dismissed", "", "c", now.Add(-3*time.Hour))
	seedPost(t, repos, "p4", "u1", "draft", "negative", "d", now.Add(-2*time.Hour))
	seedPost(t, repos, "p5", "u1", "draft", "", "ignored", now.Add(-time.Hour))

	counts, err := repos.Activity.CountActivity(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Scheduled)
	assert.Equal(t, 2, counts.Dismissed, "dismissed status and negative feedback both count")
	assert.Equal(t, 4, counts.TotalPosts, "plain drafts are not activity")
	assert.Equal(t, 0, counts.Messages)

	// since filter is strict, only content created after the cutoff counts
	since := now.Add(-210 * time.Minute)
	counts, err = repos.Activity.CountActivity(ctx, "u1", &since)
	require.NoError(t, err)
	assert.Equal(t, 0, counts.Scheduled)
	assert.Equal(t, 2, counts.Dismissed)
	assert.Equal(t, 2, counts.TotalPosts)
}

func TestActivityRepository_CountMessagesIdeaBank(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	seedUser(t, repos, "u1", "")
	now := time.Now().UTC()

	// organic conversation, all user messages count
	seedConversation(t, repos, "c1", "u1", nil, now.Add(-3*time.Hour))
	seedMessage(t, repos, "m1", "c1", "user", "one", now.Add(-170*time.Minute))
	seedMessage(t, repos, "m2", "c1", "assistant", "reply", now.Add(-169*time.Minute))
	seedMessage(t, repos, "m3", "c1", "user", "two", now.Add(-168*time.Minute))

	// idea-bank conversation, the first user message restates the entry
	ideaBank := "idea-1"
	seedConversation(t, repos, "c2", "u1", &ideaBank, now.Add(-2*time.Hour))
	seedMessage(t, repos, "m4", "c2", "user", "seeded from idea", now.Add(-110*time.Minute))
	seedMessage(t, repos, "m5", "c2", "user", "follow up", now.Add(-100*time.Minute))
	seedMessage(t, repos, "m6", "c2", "user", "another", now.Add(-90*time.Minute))

	counts, err := repos.Activity.CountActivity(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.Messages, "2 organic plus 3-1 idea-bank user messages")
}

func TestActivityRepository_GetContentSince(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()
	seedUser(t, repos, "u1", "")
	seedUser(t, repos, "u2", "")
	now := time.Now().UTC()

	seedPost(t, repos, "p1", "u1", "posted", "", "old post", now.Add(-5*time.Hour))
	seedPost(t, repos, "p2", "u1", "scheduled", "", "new post", now.Add(-time.Hour))
	seedPost(t, repos, "p3", "u1", "dismissed", "negative", "hated post", now.Add(-30*time.Minute))
	seedPost(t, repos, "p4", "u2", "posted", "", "someone else", now.Add(-time.Hour))

	ideaBank := "idea-1"
	seedConversation(t, repos, "c1", "u1", &ideaBank, now.Add(-2*time.Hour))
	seedMessage(t, repos, "m1", "c1", "user", "seeded", now.Add(-110*time.Minute))
	seedMessage(t, repos, "m2", "c1", "user", "real question", now.Add(-100*time.Minute))
	seedMessage(t, repos, "m3", "c1", "assistant", "answer", now.Add(-99*time.Minute))

	t.Run("all content", func(t *testing.T) {
		content, err := repos.Activity.GetContentSince(ctx, "u1", nil)
		require.NoError(t, err)

		require.Len(t, content.Posts, 3)
		assert.Equal(t, "p1", content.Posts[0].ID, "posts ordered oldest first")
		assert.Equal(t, "p3", content.Posts[2].ID)

		// only user messages survive, minus the idea-bank restatement
		require.Len(t, content.Messages, 1)
		assert.Equal(t, "m2", content.Messages[0].ID)
	})

	t.Run("since cutoff", func(t *testing.T) {
		since := now.Add(-2 * time.Hour)
		content, err := repos.Activity.GetContentSince(ctx, "u1", &since)
		require.NoError(t, err)

		require.Len(t, content.Posts, 2)
		assert.Equal(t, "p2", content.Posts[0].ID)

		// the conversation itself predates the cutoff
		assert.Empty(t, content.Messages)
	})

	t.Run("domain filters", func(t *testing.T) {
		content, err := repos.Activity.GetContentSince(ctx, "u1", nil)
		require.NoError(t, err)

		scheduled := content.ScheduledPosts()
		require.Len(t, scheduled, 2)

		negative := content.NegativeFeedbackPosts()
		require.Len(t, negative, 1)
		assert.Equal(t, "p3", negative[0].ID)

		// p3 carries explicit negative feedback, so it is not a plain dismissal
		assert.Empty(t, content.DismissedPosts())
	})
}
