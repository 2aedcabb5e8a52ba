// Package ai talks to Gemini for the two generative calls the service
// depends on: extracting lead records from semi-structured input and
// drafting outreach messages. Both calls constrain the response to JSON
// via a response schema, so parsing failures are API errors, not guesswork.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/Ahmedseref/Akfix-Outreach-Automator/internal/entity"
)

const defaultModel = "gemini-2.5-flash"

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

// extractedLead mirrors the JSON object shape requested from the model.
// Company and notes are required by the schema; everything else defaults
// to the empty string when the model omits it.
type extractedLead struct {
	Company        string `json:"company"`
	Representative string `json:"representative"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Country        string `json:"country"`
	Website        string `json:"website"`
	Notes          string `json:"notes"`
}

var leadListSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"company":        {Type: genai.TypeString},
			"representative": {Type: genai.TypeString},
			"phone":          {Type: genai.TypeString},
			"email":          {Type: genai.TypeString},
			"country":        {Type: genai.TypeString},
			"website":        {Type: genai.TypeString},
			"notes":          {Type: genai.TypeString},
		},
		Required: []string{"company", "notes"},
	},
}

var draftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subject":    {Type: genai.TypeString},
		"email_body": {Type: genai.TypeString},
		"chat_body":  {Type: genai.TypeString},
	},
	Required: []string{"subject", "email_body", "chat_body"},
}

// ExtractFromText pulls lead records out of pasted table text.
func (g *GeminiClient) ExtractFromText(ctx context.Context, text string) ([]entity.Customer, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(extractionInstruction+"\n\nINPUT:\n"+text, genai.RoleUser),
	}
	return g.extract(ctx, contents)
}

// ExtractFromImage pulls lead records out of a photographed table.
func (g *GeminiClient) ExtractFromImage(ctx context.Context, data []byte, mimeType string) ([]entity.Customer, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(extractionInstruction),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return g.extract(ctx, contents)
}

func (g *GeminiClient) extract(ctx context.Context, contents []*genai.Content) ([]entity.Customer, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   leadListSchema,
		Temperature:      genai.Ptr[float32](0.1),
	})
	if err != nil {
		return nil, fmt.Errorf("gemini extraction failed: %w", err)
	}

	var leads []extractedLead
	if err := json.Unmarshal([]byte(resp.Text()), &leads); err != nil {
		return nil, fmt.Errorf("gemini returned unparseable extraction JSON: %w", err)
	}

	customers := make([]entity.Customer, 0, len(leads))
	for _, l := range leads {
		customers = append(customers, entity.Customer{
			Company:        strings.TrimSpace(l.Company),
			Representative: strings.TrimSpace(l.Representative),
			Phone:          strings.TrimSpace(l.Phone),
			Email:          strings.TrimSpace(l.Email),
			Country:        strings.TrimSpace(l.Country),
			Website:        strings.TrimSpace(l.Website),
			Notes:          strings.TrimSpace(l.Notes),
		})
	}
	return customers, nil
}

// Draft asks the model for an outreach message for one lead: an email
// subject, an email body, and a chat-formatted body whose line breaks
// separate message bubbles.
func (g *GeminiClient) Draft(ctx context.Context, genCtx entity.GenerationContext, c entity.Customer, lang entity.Language) (entity.GeneratedMessage, error) {
	prompt := draftPrompt(genCtx, c, lang)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   draftSchema,
		Temperature:      genai.Ptr[float32](0.7),
	})
	if err != nil {
		return entity.GeneratedMessage{}, fmt.Errorf("gemini drafting failed: %w", err)
	}

	var out struct {
		Subject   string `json:"subject"`
		EmailBody string `json:"email_body"`
		ChatBody  string `json:"chat_body"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &out); err != nil {
		return entity.GeneratedMessage{}, fmt.Errorf("gemini returned unparseable draft JSON: %w", err)
	}

	return entity.GeneratedMessage{
		Subject:     out.Subject,
		Body:        out.EmailBody,
		ChatBody:    out.ChatBody,
		Channel:     entity.ChannelEmail,
		Language:    lang,
		GeneratedAt: time.Now(),
	}, nil
}
