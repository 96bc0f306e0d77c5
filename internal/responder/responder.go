// Package responder produces the simulated counterparty replies in chat.
// The default implementation pattern-matches the incoming text against a few
// keyword groups; an optional Gemini-backed implementation sits behind the
// same interface.
package responder

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/passportpals/passportpals-backend/internal/random"
)

// Responder turns an incoming message into the other side's reply.
type Responder interface {
	Reply(ctx context.Context, incoming, otherName, otherCity string) string
}

var (
	greetingRe = regexp.MustCompile(`^(hi|hey|hello|hola|bonjour|ciao)`)
	positiveRe = regexp.MustCompile(`(great|awesome|amazing|excited|perfect|sounds good|yes|please|love|wonderful)`)
)

// Canned is the deterministic keyword matcher, with a random pick among
// generic fallbacks when nothing matches.
type Canned struct {
	rng random.Source
}

func NewCanned(rng random.Source) *Canned {
	return &Canned{rng: rng}
}

func (c *Canned) Reply(_ context.Context, incoming, otherName, otherCity string) string {
	lower := strings.ToLower(incoming)

	switch {
	case greetingRe.MatchString(lower):
		return "Hey there! So glad you reached out 😊 How are you doing? I'm excited about the possibility of connecting!"

	case strings.Contains(lower, "neighborhood") || strings.Contains(lower, "area") || strings.Contains(lower, "where do you live"):
		return fmt.Sprintf("My neighborhood is one of my favorite parts of %s! It's got this perfect mix of local charm and hidden gems. There are some amazing cafes and authentic restaurants nearby that tourists rarely find.", otherCity)

	case strings.Contains(lower, "visit") || strings.Contains(lower, "trip") || strings.Contains(lower, "travel") || strings.Contains(lower, "come"):
		return fmt.Sprintf("I'd love to have you visit %s! When are you thinking of coming? I can help you plan an amazing itinerary with local experiences you won't find in guidebooks.", otherCity)

	case strings.Contains(lower, "food") || strings.Contains(lower, "eat") || strings.Contains(lower, "restaurant") || strings.Contains(lower, "cuisine"):
		return fmt.Sprintf("Oh, you're in for a treat! The food scene here in %s is incredible. I know some family-run spots that serve the most authentic dishes. We should definitely do a food tour together!", otherCity)

	case positiveRe.MatchString(lower):
		return fmt.Sprintf("I'm so glad you're excited! This is going to be such a great experience. Feel free to ask me anything about %s or about staying with me. I'm here to help!", otherCity)

	case strings.Contains(lower, "?"):
		return fmt.Sprintf("That's a great question! Let me think... I'd say the best advice I can give is to come with an open mind. %s has so much to offer beyond the tourist spots. I'll make sure you get the authentic local experience!", otherCity)

	case strings.Contains(lower, "thank") || strings.Contains(lower, "appreciate"):
		return "You're so welcome! I really enjoy connecting with travelers and sharing my city. It's what Passport Pals is all about - real connections and cultural exchange! 🌍"
	}

	fallbacks := []string{
		fmt.Sprintf("That's really interesting! I love learning about other travelers' experiences. What draws you to %s?", otherCity),
		fmt.Sprintf("I totally understand! %s has such a unique vibe. I think you'll really feel at home here.", otherCity),
		"Absolutely! I'm looking forward to showing you around and introducing you to some local friends too.",
		"That sounds wonderful! By the way, is there anything specific you'd like to experience while you're here?",
		fmt.Sprintf("I couldn't agree more! Feel free to reach out anytime if you have questions about the trip or %s in general.", otherCity),
	}
	return fallbacks[c.rng.IntN(len(fallbacks))]
}
