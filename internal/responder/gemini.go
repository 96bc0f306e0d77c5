package responder

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini generates replies with a generative model, falling back to the
// canned responder whenever the API is unavailable or returns nothing.
type Gemini struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	fallback Responder
}

func NewGemini(apiKey string, fallback Responder) (*Gemini, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Gemini{
		client:   client,
		model:    model,
		fallback: fallback,
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) Reply(ctx context.Context, incoming, otherName, otherCity string) string {
	prompt := fmt.Sprintf(`
		You are %s, a friendly local host in %s on a travel-hosting app.
		A traveler you matched with just wrote: %q

		Task: Write a short, warm reply (1-3 sentences) in their language.
		Stay in character, reference your city where it fits.
		Output: just the reply text.
	`, otherName, otherCity, incoming)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return g.fallback.Reply(ctx, incoming, otherName, otherCity)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return g.fallback.Reply(ctx, incoming, otherName, otherCity)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return g.fallback.Reply(ctx, incoming, otherName, otherCity)
	}
	return reply
}
