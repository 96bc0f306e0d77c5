package responder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/passportpals/passportpals-backend/internal/random"
)

func TestCanned_KeywordGroups(t *testing.T) {
	c := NewCanned(random.Fixed{})
	ctx := context.Background()

	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{"greeting", "Hey! Nice to meet you", "So glad you reached out"},
		{"greeting case-insensitive", "HELLO there", "So glad you reached out"},
		{"neighborhood", "What's your neighborhood like?", "favorite parts of Tokyo"},
		{"visit", "I want to visit in July", "love to have you visit Tokyo"},
		{"food", "Where should I eat?", "food scene here in Tokyo"},
		{"positive", "Sounds good to me", "glad you're excited"},
		{"question", "Any packing advice?", "That's a great question"},
		{"thanks", "Thank you so much", "You're so welcome"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reply := c.Reply(ctx, tc.incoming, "Hiro", "Tokyo")
			assert.Contains(t, reply, tc.want)
		})
	}
}

func TestCanned_GreetingOnlyMatchesAtStart(t *testing.T) {
	c := NewCanned(random.Fixed{})

	// "hi" mid-sentence is not a greeting; "this" must not trigger one either.
	reply := c.Reply(context.Background(), "this city fascinates me", "Hiro", "Tokyo")
	assert.NotContains(t, reply, "So glad you reached out")
}

func TestCanned_FallbackPickIsInjectable(t *testing.T) {
	ctx := context.Background()

	first := NewCanned(random.Fixed{N: 0}).Reply(ctx, "okay", "Hiro", "Tokyo")
	third := NewCanned(random.Fixed{N: 2}).Reply(ctx, "okay", "Hiro", "Tokyo")

	assert.NotEqual(t, first, third)
	assert.Contains(t, first, "What draws you to Tokyo?")
}

func TestCanned_EarlierGroupWins(t *testing.T) {
	c := NewCanned(random.Fixed{})

	// Mentions both the neighborhood and food; the neighborhood group is
	// checked first.
	reply := c.Reply(context.Background(), "what's the area like for food?", "Hiro", "Tokyo")
	assert.Contains(t, reply, "favorite parts of Tokyo")
}
