package stylist

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// systemInstruction frames the assistant's persona.
const systemInstruction = "You are an expert Indian Ethnic Fashion Stylist for EthnicElite. You help women find the perfect Kurti for their body type, occasion, and preferences."

// promptTemplate is filled with the shopper's utterance and the
// catalogue summary.
const promptTemplate = `User is looking for style advice: %q. Here is our current collection: %s. Provide 2-3 specific recommendations from the catalog or general ethnic styling tips. Be professional, friendly, and helpful like a high-end boutique personal shopper.`

// GeminiAdvisor produces styling advice using Google's Gemini API.
type GeminiAdvisor struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      zerolog.Logger
}

// NewGeminiAdvisor creates a Gemini-backed advisor.
func NewGeminiAdvisor(ctx context.Context, apiKey, model string, temperature float64, logger zerolog.Logger) (*GeminiAdvisor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger = logger.With().Str("component", "gemini-advisor").Logger()
	logger.Info().
		Str("model", model).
		Float64("temperature", temperature).
		Msg("Gemini advisor initialised")

	return &GeminiAdvisor{
		client:      client,
		model:       model,
		temperature: float32(temperature),
		logger:      logger,
	}, nil
}

// Advise asks Gemini for styling advice. The caller is expected to bound
// ctx; a slow model call fails like any other advisor error.
func (a *GeminiAdvisor) Advise(ctx context.Context, userText, catalogSummary string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, userText, catalogSummary)

	result, err := a.client.Models.GenerateContent(ctx,
		a.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr(a.temperature),
		},
	)
	if err != nil {
		a.logger.Error().Err(err).Msg("Gemini request failed")
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return result.Text(), nil
}

// unavailableAdvisor always fails, sending every session reply through
// the fallback path. Used when no Gemini API key is configured.
type unavailableAdvisor struct{}

// NewUnavailableAdvisor creates an advisor for running without a
// configured Gemini API key.
func NewUnavailableAdvisor() Advisor {
	return unavailableAdvisor{}
}

func (unavailableAdvisor) Advise(ctx context.Context, userText, catalogSummary string) (string, error) {
	return "", fmt.Errorf("no style advisor configured")
}
