package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptly-social/activity-analyzer/pkg/domain"
)

// maxTopics bounds the number of topics kept from a single analysis
const maxTopics = 10

// topicsResponse is the expected JSON shape from the topics prompt
type topicsResponse struct {
	Topics []domain.TopicInterest `json:"topics"`
}

// parseTopics extracts topics from a model response. It tries the expected
// JSON object first, then scans for an embedded array in case the model
// wrapped its answer in prose or markdown fences.
func parseTopics(response string) ([]domain.TopicInterest, error) {
	cleaned := stripFences(response)

	var wrapped topicsResponse
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && len(wrapped.Topics) > 0 {
		return normalizeTopics(wrapped.Topics), nil
	}

	// fallback: locate a JSON array anywhere in the text
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start != -1 && end > start {
		var topics []domain.TopicInterest
		if err := json.Unmarshal([]byte(cleaned[start:end+1]), &topics); err == nil && len(topics) > 0 {
			return normalizeTopics(topics), nil
		}
	}

	return nil, fmt.Errorf("no topics found in response")
}

// extractTopicsFromText is the last-resort extractor for plain-text answers,
// treating list-ish lines as topic names
func extractTopicsFromText(response string) []domain.TopicInterest {
	var topics []domain.TopicInterest
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•0123456789. ")
		if line == "" || len(line) > 80 {
			continue
		}
		if strings.ContainsAny(line, "{}[]\":") {
			continue
		}
		topics = append(topics, domain.TopicInterest{
			Topic:      line,
			Confidence: 0.5,
			Frequency:  1,
			Category:   "general",
		})
		if len(topics) >= maxTopics {
			break
		}
	}
	return topics
}

// normalizeTopics drops empty entries, clamps confidence and caps the list
func normalizeTopics(topics []domain.TopicInterest) []domain.TopicInterest {
	res := make([]domain.TopicInterest, 0, len(topics))
	for _, t := range topics {
		t.Topic = strings.TrimSpace(t.Topic)
		if t.Topic == "" {
			continue
		}
		if t.Confidence < 0 {
			t.Confidence = 0
		}
		if t.Confidence > 1 {
			t.Confidence = 1
		}
		if t.Frequency < 1 {
			t.Frequency = 1
		}
		if t.Category == "" {
			t.Category = "general"
		}
		res = append(res, t)
		if len(res) >= maxTopics {
			break
		}
	}
	return res
}

// stripFences removes markdown code fences around a JSON payload
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
