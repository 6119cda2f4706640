package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypePositionScore(t *testing.T) {
	eventType := EventType{
		Name: "On-stage Individual",
		Scores: []ScoreRule{
			{Position: "first", Points: 10},
			{Position: "second", Points: 8},
			{Position: "third", Points: 0},
		},
	}

	points, ok := eventType.PositionScore("first")
	assert.True(t, ok)
	assert.Equal(t, 10, points)

	// A configured zero-point position is still a valid position.
	points, ok = eventType.PositionScore("third")
	assert.True(t, ok)
	assert.Equal(t, 0, points)

	_, ok = eventType.PositionScore("fourth")
	assert.False(t, ok)
}
