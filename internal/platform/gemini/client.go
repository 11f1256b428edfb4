package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/envutil"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/logger"
	"github.com/DeMarcusCrump/Applied-AI-Portfolio/internal/platform/promptstyle"
)

// Client generates schema-shaped JSON through the Gemini API.
type Client struct {
	log    *logger.Logger
	client *genai.Client
	model  string
	temp   float32
}

// NewClient reads GEMINI_API_KEY / GEMINI_MODEL from the environment.
func NewClient(ctx context.Context, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := envutil.String("GEMINI_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Client{
		log:    log.With("service", "GeminiClient"),
		client: gc,
		model:  envutil.String("GEMINI_MODEL", "gemini-2.5-flash"),
		temp:   float32(envutil.Float("GEMINI_TEMPERATURE", 0.2)),
	}, nil
}

// GenerateJSON returns one object shaped by schema. With grounded set, Google Search is
// attached as a tool; the API does not accept a response schema alongside tools, so the
// schema moves into the prompt and the object is cut out of the text reply.
func (c *Client) GenerateJSON(ctx context.Context, system, user string, schema map[string]any, grounded bool) (map[string]any, error) {
	if schema == nil {
		return nil, errors.New("schema required")
	}
	system = promptstyle.ApplySystem(system, "json")

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(c.temp),
	}
	if grounded {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
		rawSchema, err := json.Marshal(schema)
		if err != nil {
			return nil, fmt.Errorf("encode schema: %w", err)
		}
		user = user + "\n\nRespond with only a JSON object matching this JSON schema:\n" + string(rawSchema)
	} else {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseJsonSchema = schema
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("gemini returned no text")
	}
	obj, err := ExtractJSONObject(text)
	if err != nil {
		c.log.Warn("Gemini reply was not a JSON object", "model", c.model, "grounded", grounded)
		return nil, err
	}
	return obj, nil
}

// ExtractJSONObject parses the first top-level JSON object in text, tolerating
// markdown fences and prose around it.
func ExtractJSONObject(text string) (map[string]any, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in model output")
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("failed to parse model JSON: %w", err)
	}
	return obj, nil
}
