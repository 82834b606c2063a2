package translate

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/agentstation/localekit/pkg/errors"
)

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// geminiAPIKeyEnvVars are checked in order for an API key.
var geminiAPIKeyEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// Gemini is a Translator backed by the Google Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini translator. The API key is read from
// GEMINI_API_KEY or GOOGLE_API_KEY; an empty model selects
// DefaultGeminiModel.
func NewGemini(ctx context.Context, model string) (*Gemini, error) {
	apiKey := ""
	for _, name := range geminiAPIKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			apiKey = v
			break
		}
	}
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &errors.APIError{Provider: "gemini", Message: err.Error(), Err: err}
	}

	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Translate implements Translator. The whole batch goes out as one prompt
// that asks for a JSON object keyed by "section.key".
func (g *Gemini) Translate(ctx context.Context, req Request) (map[string]string, error) {
	if len(req.Entries) == 0 {
		return map[string]string{}, nil
	}

	prompt, err := buildPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, &errors.APIError{Provider: "gemini", Message: err.Error(), Err: err}
	}

	return parseResponse(resp.Text())
}

// buildPrompt renders the translation instruction for a batch.
func buildPrompt(req Request) (string, error) {
	source := make(map[string]string, len(req.Entries))
	for _, entry := range req.Entries {
		source[entryID(entry)] = entry.Value
	}
	payload, err := json.MarshalIndent(source, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Translate the following user-interface strings from locale \"")
	b.WriteString(req.Source)
	b.WriteString("\" to locale \"")
	b.WriteString(req.Target)
	b.WriteString("\".\n")
	b.WriteString("Keep placeholder tokens like {{count}} exactly as they are.\n")
	b.WriteString("Respond with only a JSON object using the same keys, no prose and no code fences.\n\n")
	b.Write(payload)
	return b.String(), nil
}

// parseResponse extracts the key -> translation object from model output,
// tolerating stray code fences.
func parseResponse(text string) (map[string]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var out map[string]string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, errors.NewParseError("json", "gemini response", err.Error(), err)
	}
	return out, nil
}
