package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTopics_JSONObject(t *testing.T) {
	resp := `{"topics": [
		{"topic": "distributed systems", "confidence": 0.9, "frequency": 5, "keywords": ["raft", "consensus"], "category": "engineering", "description": "writes often about consensus"},
		{"topic": "hiring", "confidence": 0.6, "frequency": 2, "category": "management"}
	]}`

	topics, err := parseTopics(resp)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "distributed systems", topics[0].Topic)
	assert.InDelta(t, 0.9, topics[0].Confidence, 0.001)
	assert.Equal(t, []string{"raft", "consensus"}, topics[0].Keywords)
}

func TestParseTopics_FencedAndWrapped(t *testing.T) {
	resp := "```json\n{\"topics\": [{\"topic\": \"golang\", \"confidence\": 0.8, \"frequency\": 3}]}\n```"
	topics, err := parseTopics(resp)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "golang", topics[0].Topic)
	assert.Equal(t, "general", topics[0].Category, "missing category gets the default")
}

func TestParseTopics_EmbeddedArray(t *testing.T) {
	resp := `Here are the topics I found: [{"topic": "devops", "confidence": 0.7, "frequency": 2}] hope that helps`
	topics, err := parseTopics(resp)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "devops", topics[0].Topic)
}

func TestParseTopics_ClampsAndCaps(t *testing.T) {
	resp := `{"topics": [
		{"topic": "a", "confidence": 1.5, "frequency": 0},
		{"topic": "", "confidence": 0.5, "frequency": 1},
		{"topic": "b", "confidence": -0.2, "frequency": 3},
		{"topic": "c1"}, {"topic": "c2"}, {"topic": "c3"}, {"topic": "c4"}, {"topic": "c5"},
		{"topic": "c6"}, {"topic": "c7"}, {"topic": "c8"}, {"topic": "c9"}
	]}`
	topics, err := parseTopics(resp)
	require.NoError(t, err)
	assert.Len(t, topics, maxTopics)
	assert.InDelta(t, 1.0, topics[0].Confidence, 0.001)
	assert.Equal(t, 1, topics[0].Frequency)
	assert.InDelta(t, 0.0, topics[1].Confidence, 0.001)
	for _, tp := range topics {
		assert.NotEmpty(t, tp.Topic)
	}
}

func TestParseTopics_NoJSON(t *testing.T) {
	_, err := parseTopics("I could not determine any topics")
	assert.Error(t, err)
}

func TestExtractTopicsFromText(t *testing.T) {
	resp := "The main topics are:\n- machine learning\n* product strategy\n1. team leadership\n\nsome trailing prose that is fine too"
	topics := extractTopicsFromText(resp)
	require.NotEmpty(t, topics)

	names := make([]string, 0, len(topics))
	for _, tp := range topics {
		names = append(names, tp.Topic)
	}
	assert.Contains(t, names, "machine learning")
	assert.Contains(t, names, "product strategy")
	assert.Contains(t, names, "team leadership")
	for _, tp := range topics {
		assert.InDelta(t, 0.5, tp.Confidence, 0.001)
	}
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, "6s", parseRetryAfter("Rate limit reached. Please try again in 6s.").String())
	assert.Equal(t, "1.5s", parseRetryAfter("try again in 1.5s").String())
	assert.Zero(t, parseRetryAfter("rate limit reached"))
}

func TestIsQuotaMessage(t *testing.T) {
	assert.True(t, isQuotaMessage("You exceeded your current quota"))
	assert.True(t, isQuotaMessage("Insufficient credits on this key"))
	assert.False(t, isQuotaMessage("Rate limit reached, try again in 20s"))
}
